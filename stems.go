package stems

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jwlunsford/stems/internal/logging"
	"github.com/jwlunsford/stems/pkg/adapters/memory"
	"github.com/jwlunsford/stems/pkg/domain"
	"github.com/jwlunsford/stems/pkg/ports"
	"github.com/jwlunsford/stems/pkg/taper"
)

// Model is the high-level entry point for the stems library.
// It binds one measured tree to a coefficient provider and exposes the
// profile estimators once the coefficients are resolved.
type Model struct {
	stem     *domain.StemProfile
	provider ports.CoefficientProvider
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Model.
type Option func(*Model)

// WithProvider injects a custom CoefficientProvider, bypassing the built-in
// published table.
func WithProvider(p ports.CoefficientProvider) Option {
	return func(m *Model) {
		m.provider = p
	}
}

// WithLogger sets a custom structured logger for the model.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// New initializes a Model for one tree.
//
// region and species are the coefficient lookup keys; dbh is the
// outside-bark diameter at breast height in inches, height the total stem
// height in feet, and bark selects the inside- or outside-bark equation
// forms. By default coefficients come from the built-in published table;
// use WithProvider to source them elsewhere (YAML file, Postgres, cache).
func New(region, species string, dbh, height float64, bark domain.Bark, opts ...Option) (*Model, error) {
	stem, err := domain.NewStemProfile(region, species, dbh, height, bark)
	if err != nil {
		return nil, err
	}

	m := &Model{stem: stem}

	for _, opt := range opts {
		opt(m)
	}

	if m.provider == nil {
		m.provider = memory.BuiltIn()
	}
	if m.logger == nil {
		m.logger = logging.NewNop()
	}

	// Enrich logger with the lookup keys
	m.logger = m.logger.With("species", species, "region", region)

	return m, nil
}

// Resolve fetches the coefficient groups for the model's tree from its
// provider. Estimators stay unusable until it succeeds.
//
// A missing regression or segmentation row accumulates into a
// *domain.LookupError naming the absent group(s); a group that did resolve
// remains applied. A missing weight row is not an error: the flat
// domain.DefaultTonsPerCubicFoot conversion is applied instead.
// Infrastructure failures abort resolution and propagate wrapped.
func (m *Model) Resolve(ctx context.Context) error {
	if err := Resolve(ctx, m.stem, m.provider); err != nil {
		var lookup *domain.LookupError
		if errors.As(err, &lookup) {
			m.logger.Debug("coefficient lookup incomplete", "missing", lookup.Missing)
		}
		return err
	}

	m.logger.Debug("coefficients resolved",
		"dbh", m.stem.DBH, "height", m.stem.TotalHeight, "bark", m.stem.Bark)
	return nil
}

// Resolve hydrates a stem from a provider. Most callers want Model.Resolve;
// this entry point serves hosts that manage StemProfile values themselves.
func Resolve(ctx context.Context, stem *domain.StemProfile, provider ports.CoefficientProvider) error {
	lookup := &domain.LookupError{
		Region:  stem.Region,
		Species: stem.Species,
		Bark:    stem.Bark,
	}

	reg, err := provider.FindRegression(ctx, stem.Region, stem.Species, stem.Bark)
	switch {
	case err == nil:
		stem.ApplyRegression(reg)
	case errors.Is(err, domain.ErrCoefficientNotFound):
		lookup.Missing = append(lookup.Missing, domain.GroupRegression)
	default:
		return fmt.Errorf("resolving regression coefficients: %w", err)
	}

	seg, err := provider.FindSegmentation(ctx, stem.Species, stem.Bark)
	switch {
	case err == nil:
		stem.ApplySegmentation(seg)
	case errors.Is(err, domain.ErrCoefficientNotFound):
		lookup.Missing = append(lookup.Missing, domain.GroupSegmentation)
	default:
		return fmt.Errorf("resolving segmentation coefficients: %w", err)
	}

	wgt, err := provider.FindWeight(ctx, stem.Species)
	switch {
	case err == nil:
		stem.ApplyWeight(wgt)
	case errors.Is(err, domain.ErrCoefficientNotFound):
		// Documented fallback, not a lookup failure.
		stem.ApplyWeight(domain.WeightCoefficient{TonsPerCubicFoot: domain.DefaultTonsPerCubicFoot})
	default:
		return fmt.Errorf("resolving weight coefficient: %w", err)
	}

	if len(lookup.Missing) > 0 {
		return lookup
	}
	return nil
}

// DiameterAt predicts the stem diameter in inches at h feet above ground.
func (m *Model) DiameterAt(h float64) (float64, error) {
	return taper.DiameterAt(m.stem, h)
}

// HeightAt predicts the height in feet at which the stem tapers to d inches.
func (m *Model) HeightAt(d float64) (float64, error) {
	return taper.HeightAt(m.stem, d)
}

// Volume predicts the cubic-foot volume between two heights on the stem.
func (m *Model) Volume(lower, upper float64) (float64, error) {
	return taper.Volume(m.stem, lower, upper)
}

// Weight predicts the green weight in tons between two heights on the stem.
func (m *Model) Weight(lower, upper float64) (float64, error) {
	return taper.Weight(m.stem, lower, upper)
}

// SetDimensions re-measures the tree. Later estimates reflect the new
// dimensions; resolved coefficients stay applied.
func (m *Model) SetDimensions(dbh, height float64) error {
	return m.stem.SetDimensions(dbh, height)
}

// Stem returns the underlying profile for direct access to the resolved
// coefficient groups and derived diameters.
func (m *Model) Stem() *domain.StemProfile {
	return m.stem
}

// Species lists the species the model's provider can resolve.
// Returns an error if the provider does not support listing.
func (m *Model) Species(ctx context.Context) ([]string, error) {
	if l, ok := m.provider.(ports.SpeciesLister); ok {
		return l.ListSpecies(ctx)
	}
	return nil, fmt.Errorf("current provider does not support species listing")
}
