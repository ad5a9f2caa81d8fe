// Package postgres provides a ports.CoefficientProvider backed by a
// PostgreSQL database. The tables mirror the published coefficient
// schema, one row per key:
//
//	regcoeff(region, spp, bark, reg4_a, reg4_b, reg17_a, reg17_b)
//	segcoeff(spp, bark, butt_r, butt_c, butt_e, lstem_p, ustem_b, ustem_a)
//	weightcoeff(spp, tons_per_cubic_foot)
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/jwlunsford/stems/pkg/domain"
	_ "github.com/lib/pq" // postgres driver
)

// Provider implements ports.CoefficientProvider over a sqlx connection
// pool. It is safe for concurrent use.
type Provider struct {
	db *sqlx.DB
}

// Open connects to the database at dsn and verifies the connection.
func Open(dsn string) (*Provider, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to coefficient database: %w", err)
	}
	return &Provider{db: db}, nil
}

// New wraps an existing connection pool.
func New(db *sqlx.DB) *Provider {
	return &Provider{db: db}
}

// Close releases the underlying pool.
func (p *Provider) Close() error {
	return p.db.Close()
}

type regressionRecord struct {
	Reg4A  float64 `db:"reg4_a"`
	Reg4B  float64 `db:"reg4_b"`
	Reg17A float64 `db:"reg17_a"`
	Reg17B float64 `db:"reg17_b"`
}

type segmentationRecord struct {
	ButtR  float64 `db:"butt_r"`
	ButtC  float64 `db:"butt_c"`
	ButtE  float64 `db:"butt_e"`
	LowerP float64 `db:"lstem_p"`
	UpperB float64 `db:"ustem_b"`
	UpperA float64 `db:"ustem_a"`
}

// FindRegression queries regcoeff for an exact key match.
func (p *Provider) FindRegression(ctx context.Context, region, species string, bark domain.Bark) (domain.RegressionCoefficients, error) {
	const query = `
		SELECT reg4_a, reg4_b, reg17_a, reg17_b
		FROM regcoeff
		WHERE region = $1 AND spp = $2 AND bark = $3`

	var rec regressionRecord
	if err := p.db.GetContext(ctx, &rec, query, region, species, int(bark)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.RegressionCoefficients{}, fmt.Errorf("regression row %s/%s (%s bark): %w", region, species, bark, domain.ErrCoefficientNotFound)
		}
		return domain.RegressionCoefficients{}, fmt.Errorf("failed to query regression coefficients: %w", err)
	}
	return domain.RegressionCoefficients{
		Reg4A: rec.Reg4A, Reg4B: rec.Reg4B, Reg17A: rec.Reg17A, Reg17B: rec.Reg17B,
	}, nil
}

// FindSegmentation queries segcoeff for an exact key match.
func (p *Provider) FindSegmentation(ctx context.Context, species string, bark domain.Bark) (domain.SegmentationCoefficients, error) {
	const query = `
		SELECT butt_r, butt_c, butt_e, lstem_p, ustem_b, ustem_a
		FROM segcoeff
		WHERE spp = $1 AND bark = $2`

	var rec segmentationRecord
	if err := p.db.GetContext(ctx, &rec, query, species, int(bark)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.SegmentationCoefficients{}, fmt.Errorf("segmentation row %s (%s bark): %w", species, bark, domain.ErrCoefficientNotFound)
		}
		return domain.SegmentationCoefficients{}, fmt.Errorf("failed to query segmentation coefficients: %w", err)
	}
	return domain.SegmentationCoefficients{
		ButtR: rec.ButtR, ButtC: rec.ButtC, ButtE: rec.ButtE,
		LowerP: rec.LowerP, UpperB: rec.UpperB, UpperA: rec.UpperA,
	}, nil
}

// FindWeight queries weightcoeff by species.
func (p *Provider) FindWeight(ctx context.Context, species string) (domain.WeightCoefficient, error) {
	const query = `SELECT tons_per_cubic_foot FROM weightcoeff WHERE spp = $1`

	var tons float64
	if err := p.db.GetContext(ctx, &tons, query, species); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.WeightCoefficient{}, fmt.Errorf("weight row %s: %w", species, domain.ErrCoefficientNotFound)
		}
		return domain.WeightCoefficient{}, fmt.Errorf("failed to query weight coefficient: %w", err)
	}
	return domain.WeightCoefficient{TonsPerCubicFoot: tons}, nil
}

// ListSpecies returns the distinct species present in any table, sorted
// ascending.
func (p *Provider) ListSpecies(ctx context.Context) ([]string, error) {
	const query = `
		SELECT spp FROM regcoeff
		UNION
		SELECT spp FROM segcoeff
		UNION
		SELECT spp FROM weightcoeff
		ORDER BY spp`

	var species []string
	if err := p.db.SelectContext(ctx, &species, query); err != nil {
		return nil, fmt.Errorf("failed to list species: %w", err)
	}
	return species, nil
}
