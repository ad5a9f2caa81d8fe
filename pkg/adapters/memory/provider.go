// Package memory provides an in-memory ports.CoefficientProvider, both
// for seeding custom tables in tests and as the home of the built-in
// southern-pine coefficient table.
package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jwlunsford/stems/pkg/domain"
)

// RegressionRow is one entry of the regression table, keyed by region,
// species, and bark indicator.
type RegressionRow struct {
	Region       string
	Species      string
	Bark         domain.Bark
	Coefficients domain.RegressionCoefficients
}

// SegmentationRow is one entry of the segmentation table. The published
// tables key these by species and bark only; the same row serves every
// region.
type SegmentationRow struct {
	Species      string
	Bark         domain.Bark
	Coefficients domain.SegmentationCoefficients
}

// WeightRow is one entry of the green-weight table, keyed by species.
type WeightRow struct {
	Species     string
	Coefficient domain.WeightCoefficient
}

// Table bundles the three coefficient tables for seeding a Provider.
type Table struct {
	Regression   []RegressionRow
	Segmentation []SegmentationRow
	Weight       []WeightRow
}

type regKey struct {
	region  string
	species string
	bark    domain.Bark
}

type segKey struct {
	species string
	bark    domain.Bark
}

// Provider implements ports.CoefficientProvider over in-memory maps.
// The tables are indexed at construction and never mutated afterwards,
// so a Provider is safe for concurrent use.
type Provider struct {
	reg map[regKey]domain.RegressionCoefficients
	seg map[segKey]domain.SegmentationCoefficients
	wgt map[string]domain.WeightCoefficient
}

// New indexes the given tables into a Provider. Later rows win when a
// table repeats a key.
func New(table Table) *Provider {
	p := &Provider{
		reg: make(map[regKey]domain.RegressionCoefficients, len(table.Regression)),
		seg: make(map[segKey]domain.SegmentationCoefficients, len(table.Segmentation)),
		wgt: make(map[string]domain.WeightCoefficient, len(table.Weight)),
	}
	for _, r := range table.Regression {
		p.reg[regKey{r.Region, r.Species, r.Bark}] = r.Coefficients
	}
	for _, r := range table.Segmentation {
		p.seg[segKey{r.Species, r.Bark}] = r.Coefficients
	}
	for _, r := range table.Weight {
		p.wgt[r.Species] = r.Coefficient
	}
	return p
}

// FindRegression returns the regression group for an exact key match.
func (p *Provider) FindRegression(ctx context.Context, region, species string, bark domain.Bark) (domain.RegressionCoefficients, error) {
	c, ok := p.reg[regKey{region, species, bark}]
	if !ok {
		return domain.RegressionCoefficients{}, fmt.Errorf("regression row %s/%s (%s bark): %w", region, species, bark, domain.ErrCoefficientNotFound)
	}
	return c, nil
}

// FindSegmentation returns the segmentation group for an exact key match.
func (p *Provider) FindSegmentation(ctx context.Context, species string, bark domain.Bark) (domain.SegmentationCoefficients, error) {
	c, ok := p.seg[segKey{species, bark}]
	if !ok {
		return domain.SegmentationCoefficients{}, fmt.Errorf("segmentation row %s (%s bark): %w", species, bark, domain.ErrCoefficientNotFound)
	}
	return c, nil
}

// FindWeight returns the green-weight factor for a species.
func (p *Provider) FindWeight(ctx context.Context, species string) (domain.WeightCoefficient, error) {
	c, ok := p.wgt[species]
	if !ok {
		return domain.WeightCoefficient{}, fmt.Errorf("weight row %s: %w", species, domain.ErrCoefficientNotFound)
	}
	return c, nil
}

// ListSpecies returns the distinct species across all three tables,
// sorted ascending.
func (p *Provider) ListSpecies(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	for k := range p.reg {
		seen[k.species] = true
	}
	for k := range p.seg {
		seen[k.species] = true
	}
	for s := range p.wgt {
		seen[s] = true
	}
	species := make([]string, 0, len(seen))
	for s := range seen {
		species = append(species, s)
	}
	sort.Strings(species) // Deterministic order
	return species, nil
}
