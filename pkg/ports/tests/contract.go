package tests

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jwlunsford/stems/pkg/domain"
	"github.com/jwlunsford/stems/pkg/ports"
)

// Fixture describes one coefficient row set the provider under test is
// expected to hold. Weight is nil when the table carries no weight row
// for the species.
type Fixture struct {
	Region       string
	Species      string
	Bark         domain.Bark
	Regression   domain.RegressionCoefficients
	Segmentation domain.SegmentationCoefficients
	Weight       *domain.WeightCoefficient
}

// CoefficientProviderContractTest is a reusable test suite that verifies
// an adapter complies with ports.CoefficientProvider.
func CoefficientProviderContractTest(t *testing.T, provider ports.CoefficientProvider, fixtures []Fixture) {
	t.Helper()
	ctx := context.Background()

	// 1. Every seeded row resolves with its exact values.
	t.Run("FindRegression_Success", func(t *testing.T) {
		for _, f := range fixtures {
			got, err := provider.FindRegression(ctx, f.Region, f.Species, f.Bark)
			if err != nil {
				t.Fatalf("unexpected error for %s/%s: %v", f.Region, f.Species, err)
			}
			if got != f.Regression {
				t.Errorf("regression mismatch for %s/%s: got %+v, want %+v", f.Region, f.Species, got, f.Regression)
			}
		}
	})

	t.Run("FindSegmentation_Success", func(t *testing.T) {
		for _, f := range fixtures {
			got, err := provider.FindSegmentation(ctx, f.Species, f.Bark)
			if err != nil {
				t.Fatalf("unexpected error for %s: %v", f.Species, err)
			}
			if got != f.Segmentation {
				t.Errorf("segmentation mismatch for %s: got %+v, want %+v", f.Species, got, f.Segmentation)
			}
		}
	})

	t.Run("FindWeight", func(t *testing.T) {
		for _, f := range fixtures {
			got, err := provider.FindWeight(ctx, f.Species)
			if f.Weight == nil {
				if !errors.Is(err, domain.ErrCoefficientNotFound) {
					t.Errorf("species %s has no weight row; want ErrCoefficientNotFound, got %v", f.Species, err)
				}
				continue
			}
			if err != nil {
				t.Fatalf("unexpected error for %s: %v", f.Species, err)
			}
			if got != *f.Weight {
				t.Errorf("weight mismatch for %s: got %+v, want %+v", f.Species, got, *f.Weight)
			}
		}
	})

	// 2. A key no table holds reports ErrCoefficientNotFound on every
	// lookup, never a zero-valued group.
	t.Run("NotFound", func(t *testing.T) {
		if _, err := provider.FindRegression(ctx, "pacific northwest", "sugar maple", domain.InsideBark); !errors.Is(err, domain.ErrCoefficientNotFound) {
			t.Errorf("FindRegression: want ErrCoefficientNotFound, got %v", err)
		}
		if _, err := provider.FindSegmentation(ctx, "sugar maple", domain.InsideBark); !errors.Is(err, domain.ErrCoefficientNotFound) {
			t.Errorf("FindSegmentation: want ErrCoefficientNotFound, got %v", err)
		}
		if _, err := provider.FindWeight(ctx, "sugar maple"); !errors.Is(err, domain.ErrCoefficientNotFound) {
			t.Errorf("FindWeight: want ErrCoefficientNotFound, got %v", err)
		}
	})

	// 3. Matching is exact: a case-mangled species or a flipped bark
	// indicator must not resolve to a seeded row.
	t.Run("ExactMatching", func(t *testing.T) {
		if len(fixtures) == 0 {
			t.Skip("no fixtures to mangle")
		}
		f := fixtures[0]

		upper := strings.ToUpper(f.Species)
		if upper != f.Species {
			if _, err := provider.FindRegression(ctx, f.Region, upper, f.Bark); !errors.Is(err, domain.ErrCoefficientNotFound) {
				t.Errorf("case-mangled species resolved; want ErrCoefficientNotFound, got %v", err)
			}
		}

		if _, err := provider.FindRegression(ctx, f.Region+" annex", f.Species, f.Bark); !errors.Is(err, domain.ErrCoefficientNotFound) {
			t.Errorf("unknown region resolved; want ErrCoefficientNotFound, got %v", err)
		}
	})
}
