package ports

import (
	"context"

	"github.com/jwlunsford/stems/pkg/domain"
)

// CoefficientProvider defines how the engine retrieves published
// coefficient groups for a stem. Matching is exact on the region and
// species strings and on the bark indicator; providers must not apply
// fuzzy or case-insensitive fallbacks.
type CoefficientProvider interface {
	// FindRegression returns the regression group keyed by region,
	// species, and bark indicator. It returns an error satisfying
	// errors.Is(err, domain.ErrCoefficientNotFound) when no row matches.
	FindRegression(ctx context.Context, region, species string, bark domain.Bark) (domain.RegressionCoefficients, error)

	// FindSegmentation returns the segmentation group. The published
	// tables key these by species and bark only; the same row serves
	// every region.
	FindSegmentation(ctx context.Context, species string, bark domain.Bark) (domain.SegmentationCoefficients, error)

	// FindWeight returns the green-weight conversion factor for a
	// species. A missing row is reported like the other lookups; callers
	// that want the documented fallback apply
	// domain.DefaultTonsPerCubicFoot themselves.
	FindWeight(ctx context.Context, species string) (domain.WeightCoefficient, error)
}

// SpeciesLister is an optional interface for providers that can enumerate
// the species their tables cover. It backs introspection surfaces (e.g.
// the 'stems species' command); providers without a cheap enumeration may
// simply not implement it.
type SpeciesLister interface {
	// ListSpecies returns the distinct species present in any table,
	// sorted ascending.
	ListSpecies(ctx context.Context) ([]string, error)
}
