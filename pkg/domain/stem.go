package domain

import (
	"fmt"
	"math"
)

// StemProfile describes a single tree and carries the coefficient groups
// resolved for it. Descriptor fields are plain data; the groups are applied
// whole through the Apply methods so a group is always either fully present
// or absent, never partially populated.
//
// A StemProfile is not safe for concurrent mutation, but once resolved all
// estimator inputs are read-only, so distinct goroutines may evaluate the
// same instance provided the resolve happened before.
type StemProfile struct {
	Region      string
	Species     string
	DBH         float64 // outside-bark diameter at breast height, inches
	TotalHeight float64 // total stem height, feet
	Bark        Bark

	reg *RegressionCoefficients
	seg *SegmentationCoefficients
	wgt *WeightCoefficient
}

// NewStemProfile validates the tree descriptors and returns a profile with
// no coefficients applied yet. The height bound is 17.3 ft because every
// section formula divides by (height - 17.3) or exponentiates
// (1 - 17.3/height).
func NewStemProfile(region, species string, dbh, height float64, bark Bark) (*StemProfile, error) {
	if err := validateDimensions(dbh, height); err != nil {
		return nil, err
	}
	if !bark.Valid() {
		return nil, fmt.Errorf("%w: bark indicator must be 0 (outside) or 1 (inside), got %d", ErrInvalidDimension, int(bark))
	}
	return &StemProfile{
		Region:      region,
		Species:     species,
		DBH:         dbh,
		TotalHeight: height,
		Bark:        bark,
	}, nil
}

func validateDimensions(dbh, height float64) error {
	if math.IsNaN(dbh) || dbh <= 0 {
		return fmt.Errorf("%w: dbh must be positive, got %v", ErrInvalidDimension, dbh)
	}
	if math.IsNaN(height) || height <= GirardHeight {
		return fmt.Errorf("%w: total height must exceed %v ft, got %v", ErrInvalidDimension, GirardHeight, height)
	}
	return nil
}

// SetDimensions replaces dbh and total height after validation. Derived
// values (inside-bark dbh, Girard diameter) are functions of the current
// dimensions, so they follow automatically. Applied coefficient groups are
// kept: they are keyed by region/species/bark, not by size.
func (s *StemProfile) SetDimensions(dbh, height float64) error {
	if err := validateDimensions(dbh, height); err != nil {
		return err
	}
	s.DBH = dbh
	s.TotalHeight = height
	return nil
}

// ApplyRegression stores the regression group. Re-applying replaces the
// whole group, never individual fields.
func (s *StemProfile) ApplyRegression(c RegressionCoefficients) {
	s.reg = &c
}

// ApplySegmentation stores the segmentation group.
func (s *StemProfile) ApplySegmentation(c SegmentationCoefficients) {
	s.seg = &c
}

// ApplyWeight stores the weight conversion factor.
func (s *StemProfile) ApplyWeight(c WeightCoefficient) {
	s.wgt = &c
}

// Regression returns the applied regression group, if any.
func (s *StemProfile) Regression() (RegressionCoefficients, bool) {
	if s.reg == nil {
		return RegressionCoefficients{}, false
	}
	return *s.reg, true
}

// Segmentation returns the applied segmentation group, if any.
func (s *StemProfile) Segmentation() (SegmentationCoefficients, bool) {
	if s.seg == nil {
		return SegmentationCoefficients{}, false
	}
	return *s.seg, true
}

// Weight returns the applied weight conversion factor, if any.
func (s *StemProfile) Weight() (WeightCoefficient, bool) {
	if s.wgt == nil {
		return WeightCoefficient{}, false
	}
	return *s.wgt, true
}

// Resolved reports whether both groups the full taper model needs are
// applied. Estimators that need only one half check that half themselves.
func (s *StemProfile) Resolved() bool {
	return s.reg != nil && s.seg != nil
}

// DBHInsideBark predicts the inside-bark diameter at breast height from the
// outside-bark dbh (Eq. 7), rounded to hundredths of an inch. The value is
// only consumed by the taper sections when Bark is InsideBark; outside-bark
// profiles use DBH directly.
func (s *StemProfile) DBHInsideBark() (float64, error) {
	if s.reg == nil {
		return 0, fmt.Errorf("%w: regression group required for inside-bark dbh", ErrUnresolvedParameters)
	}
	if s.DBH <= 0 {
		return 0, &DomainError{Op: "domain.DBHInsideBark", Reason: fmt.Sprintf("dbh must be positive, got %v", s.DBH)}
	}
	return round2(s.reg.Reg4A + s.reg.Reg4B*s.DBH), nil
}

// GirardDiameter predicts the stem diameter at 17.3 ft (Eq. 10), rounded to
// hundredths of an inch. This is the "F" value anchoring the lower and
// upper taper sections.
func (s *StemProfile) GirardDiameter() (float64, error) {
	if s.reg == nil {
		return 0, fmt.Errorf("%w: regression group required for Girard diameter", ErrUnresolvedParameters)
	}
	if s.TotalHeight <= GirardHeight {
		return 0, &DomainError{
			Op:     "domain.GirardDiameter",
			Reason: fmt.Sprintf("total height %v ft does not reach Girard height %v ft", s.TotalHeight, GirardHeight),
		}
	}
	ratio := GirardHeight / s.TotalHeight
	return round2(s.DBH * (s.reg.Reg17A + s.reg.Reg17B*ratio*ratio)), nil
}

func (s *StemProfile) String() string {
	return fmt.Sprintf("StemProfile(region=%q, species=%q, dbh=%.1f, height=%.1f, bark=%s)",
		s.Region, s.Species, s.DBH, s.TotalHeight, s.Bark)
}

// round2 rounds half away from zero at the second decimal, matching the
// rounding the published coefficient tables were validated against.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
