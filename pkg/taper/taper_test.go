package taper

import (
	"errors"
	"math"
	"testing"

	"github.com/jwlunsford/stems/pkg/domain"
)

// Reference coefficient rows for deep-south loblolly pine.
var (
	loblollyRegIB = domain.RegressionCoefficients{Reg4A: -0.48391, Reg4B: 0.93884, Reg17A: 0.80079, Reg17B: 0.57255}
	loblollySegIB = domain.SegmentationCoefficients{ButtR: 32.284, ButtC: 0.10449, ButtE: 158.899, LowerP: 6.3157, UpperB: 2.178477, UpperA: 0.64}
	loblollyRegOB = domain.RegressionCoefficients{Reg4A: -0.50022, Reg4B: 0.94077, Reg17A: 0.83089, Reg17B: 0.56999}
	loblollySegOB = domain.SegmentationCoefficients{ButtR: 27.310, ButtC: 0.11624, ButtE: 193.204, LowerP: 5.8816, UpperB: 2.034095, UpperA: 0.59}
)

func resolvedProfile(t *testing.T, dbh, height float64, bark domain.Bark, reg domain.RegressionCoefficients, seg domain.SegmentationCoefficients) *domain.StemProfile {
	t.Helper()
	s, err := domain.NewStemProfile("deep south", "loblolly pine", dbh, height, bark)
	if err != nil {
		t.Fatal(err)
	}
	s.ApplyRegression(reg)
	s.ApplySegmentation(seg)
	return s
}

func referenceProfile(t *testing.T) *domain.StemProfile {
	return resolvedProfile(t, 16.0, 90.0, domain.InsideBark, loblollyRegIB, loblollySegIB)
}

func TestDiameterAt(t *testing.T) {
	s := referenceProfile(t)

	tests := []struct {
		h    float64
		want float64
	}{
		{1, 15.23},
		{2, 14.95},
		{4.4, 14.55},
		{4.5, 0.0}, // breast-height breakpoint: no section applies
		{5, 14.46},
		{10, 13.81},
		{16, 13.25},
		{17.3, 0.0}, // Girard breakpoint: no section applies
		{20, 12.98},
		{30, 12.20},
		{40, 11.17},
		{50, 9.80},
		{63, 7.20},
		{70, 5.34},
		{85, 1.33},
	}
	for _, tt := range tests {
		got, err := DiameterAt(s, tt.h)
		if err != nil {
			t.Fatalf("DiameterAt(%v): %v", tt.h, err)
		}
		if got != tt.want {
			t.Errorf("DiameterAt(%v) = %v, want %v", tt.h, got, tt.want)
		}
	}
}

func TestHeightAt(t *testing.T) {
	s := referenceProfile(t)

	tests := []struct {
		d    float64
		want float64
	}{
		{0, 90.0}, // zero diameter is the tip
		{3, 78.76},
		{5, 71.27},
		{9.8, 50.0},
		{12, 32.18},
		{13, 19.67},
		{13.15, 17.3}, // d == F lands exactly on Girard height
		{14, 8.42},
		{14.54, 4.5}, // d == D lands exactly on breast height
		{15, 1.78},
		{15.5, 0.3},
	}
	for _, tt := range tests {
		got, err := HeightAt(s, tt.d)
		if err != nil {
			t.Fatalf("HeightAt(%v): %v", tt.d, err)
		}
		if got != tt.want {
			t.Errorf("HeightAt(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestVolume(t *testing.T) {
	s := referenceProfile(t)

	tests := []struct {
		lower, upper float64
		want         float64
	}{
		{1, 50, 42},
		{0, 90, 51},
		{0, 4.5, 5},
		{4.5, 17.3, 13},
		{17.3, 90, 33},
		{1, 17.3, 17},
		{0, 50, 43},
		{50, 90, 8},
		{10, 60, 36},
	}
	for _, tt := range tests {
		got, err := Volume(s, tt.lower, tt.upper)
		if err != nil {
			t.Fatalf("Volume(%v, %v): %v", tt.lower, tt.upper, err)
		}
		if got != tt.want {
			t.Errorf("Volume(%v, %v) = %v, want %v", tt.lower, tt.upper, got, tt.want)
		}
	}

	// Section sub-volumes add up to the whole stem.
	butt, _ := Volume(s, 0, 4.5)
	lower, _ := Volume(s, 4.5, 17.3)
	upper, _ := Volume(s, 17.3, 90)
	whole, _ := Volume(s, 0, 90)
	if butt+lower+upper != whole {
		t.Errorf("section volumes %v+%v+%v != whole-stem %v", butt, lower, upper, whole)
	}

	// An interval entirely outside every section contributes nothing.
	if v, _ := Volume(s, 50, 10); v != 0 {
		t.Errorf("Volume(50, 10) = %v, want 0", v)
	}
}

func TestWeight(t *testing.T) {
	s := referenceProfile(t)

	if _, err := Weight(s, 1, 50); !errors.Is(err, domain.ErrUnresolvedParameters) {
		t.Fatalf("Weight without conversion factor: want ErrUnresolvedParameters, got %v", err)
	}

	s.ApplyWeight(domain.WeightCoefficient{TonsPerCubicFoot: 0.025})
	got, err := Weight(s, 1, 50)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1.05 {
		t.Errorf("Weight(1, 50) at 0.025 t/ft³ = %v, want 1.05", got)
	}

	s.ApplyWeight(domain.WeightCoefficient{TonsPerCubicFoot: domain.DefaultTonsPerCubicFoot})
	got, err = Weight(s, 1, 50)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0.92 {
		t.Errorf("Weight(1, 50) at fallback factor = %v, want 0.92", got)
	}
}

func TestOutsideBarkProfile(t *testing.T) {
	s := resolvedProfile(t, 16.0, 90.0, domain.OutsideBark, loblollyRegOB, loblollySegOB)

	// Outside-bark profiles anchor on the measured dbh itself, so the
	// estimates run wider than the inside-bark profile of the same tree.
	tests := []struct {
		h    float64
		want float64
	}{
		{5, 15.88},
		{50, 10.18},
	}
	for _, tt := range tests {
		got, err := DiameterAt(s, tt.h)
		if err != nil {
			t.Fatalf("DiameterAt(%v): %v", tt.h, err)
		}
		if got != tt.want {
			t.Errorf("outside bark DiameterAt(%v) = %v, want %v", tt.h, got, tt.want)
		}
	}

	h, err := HeightAt(s, 9)
	if err != nil {
		t.Fatal(err)
	}
	if h != 55.95 {
		t.Errorf("outside bark HeightAt(9) = %v, want 55.95", h)
	}

	v, err := Volume(s, 1, 50)
	if err != nil {
		t.Fatal(err)
	}
	if v != 47 {
		t.Errorf("outside bark Volume(1, 50) = %v, want 47", v)
	}
}

func TestEstimatesFollowDimensions(t *testing.T) {
	s := referenceProfile(t)
	if err := s.SetDimensions(12.0, 70.0); err != nil {
		t.Fatal(err)
	}

	if d, _ := DiameterAt(s, 30); d != 8.95 {
		t.Errorf("DiameterAt(30) after SetDimensions = %v, want 8.95", d)
	}
	if h, _ := HeightAt(s, 8); h != 37.62 {
		t.Errorf("HeightAt(8) after SetDimensions = %v, want 37.62", h)
	}
	if v, _ := Volume(s, 1, 40); v != 20 {
		t.Errorf("Volume(1, 40) after SetDimensions = %v, want 20", v)
	}
}

func TestHeightAtInvertsDiameterAt(t *testing.T) {
	s := referenceProfile(t)

	// Round-tripping through the rounded diameter shifts the recovered
	// height by at most a few hundredths of a foot away from the section
	// breakpoints.
	const tolerance = 0.15
	for h := 0.5; h < 89.5; h += 0.5 {
		if math.Abs(h-domain.BreastHeight) < 0.3 || math.Abs(h-domain.GirardHeight) < 0.3 {
			continue
		}
		d, err := DiameterAt(s, h)
		if err != nil {
			t.Fatalf("DiameterAt(%v): %v", h, err)
		}
		if d <= 0 {
			continue
		}
		back, err := HeightAt(s, d)
		if err != nil {
			t.Fatalf("HeightAt(%v): %v", d, err)
		}
		if math.Abs(back-h) > tolerance {
			t.Errorf("HeightAt(DiameterAt(%v)) = %v, drifted more than %v", h, back, tolerance)
		}
	}
}

func TestDiameterStaysInsideBark(t *testing.T) {
	s := referenceProfile(t)

	for h := 0.01; h < 90; h += 0.01 {
		d, err := DiameterAt(s, h)
		if err != nil {
			t.Fatalf("DiameterAt(%v): %v", h, err)
		}
		if d >= s.DBH {
			t.Fatalf("inside-bark diameter %v at height %v exceeds outside-bark dbh %v", d, h, s.DBH)
		}
	}
}

func TestVolumeMonotonicInUpperBound(t *testing.T) {
	s := referenceProfile(t)

	prev := math.Inf(-1)
	for u := 0.0; u <= 90; u += 0.1 {
		v, err := Volume(s, 0, u)
		if err != nil {
			t.Fatalf("Volume(0, %v): %v", u, err)
		}
		if v < prev {
			t.Fatalf("Volume(0, %v) = %v dropped below previous %v", u, v, prev)
		}
		prev = v
	}
}

func TestUnresolvedParameters(t *testing.T) {
	s, err := domain.NewStemProfile("deep south", "loblolly pine", 16.0, 90.0, domain.InsideBark)
	if err != nil {
		t.Fatal(err)
	}

	// No segmentation group.
	if _, err := DiameterAt(s, 10); !errors.Is(err, domain.ErrUnresolvedParameters) {
		t.Errorf("DiameterAt without segmentation: want ErrUnresolvedParameters, got %v", err)
	}

	// Segmentation present but no regression group: D and F cannot be
	// derived, so the estimators still refuse.
	s.ApplySegmentation(loblollySegIB)
	if _, err := DiameterAt(s, 10); !errors.Is(err, domain.ErrUnresolvedParameters) {
		t.Errorf("DiameterAt without regression: want ErrUnresolvedParameters, got %v", err)
	}
	if _, err := HeightAt(s, 9.8); !errors.Is(err, domain.ErrUnresolvedParameters) {
		t.Errorf("HeightAt without regression: want ErrUnresolvedParameters, got %v", err)
	}
	if _, err := Volume(s, 1, 50); !errors.Is(err, domain.ErrUnresolvedParameters) {
		t.Errorf("Volume without regression: want ErrUnresolvedParameters, got %v", err)
	}
}

func TestDomainErrors(t *testing.T) {
	t.Run("height at girard breakpoint", func(t *testing.T) {
		// Reachable only by bypassing the constructor; the estimators
		// still refuse rather than divide by zero.
		s := &domain.StemProfile{Region: "deep south", Species: "loblolly pine", DBH: 16.0, TotalHeight: domain.GirardHeight, Bark: domain.InsideBark}
		s.ApplyRegression(loblollyRegIB)
		s.ApplySegmentation(loblollySegIB)

		var de *domain.DomainError
		if _, err := DiameterAt(s, 10); !errors.As(err, &de) {
			t.Errorf("DiameterAt at H == 17.3: want DomainError, got %v", err)
		}
		if _, err := Volume(s, 0, 17); !errors.As(err, &de) {
			t.Errorf("Volume at H == 17.3: want DomainError, got %v", err)
		}
	})

	t.Run("negative radicand", func(t *testing.T) {
		bad := loblollySegIB
		bad.ButtC = -2.5 // drives the butt section negative near the ground
		s := resolvedProfile(t, 16.0, 90.0, domain.InsideBark, loblollyRegIB, bad)

		var de *domain.DomainError
		if _, err := DiameterAt(s, 1); !errors.As(err, &de) {
			t.Fatalf("want DomainError for negative radicand, got %v", err)
		}
	})

	t.Run("non-positive reference diameter", func(t *testing.T) {
		// A sapling-sized dbh pushes the inside-bark regression below
		// zero; the section formulas divide by D³.
		s := resolvedProfile(t, 0.4, 20.0, domain.InsideBark, loblollyRegIB, loblollySegIB)

		var de *domain.DomainError
		if _, err := DiameterAt(s, 10); !errors.As(err, &de) {
			t.Fatalf("want DomainError for non-positive reference diameter, got %v", err)
		}
	})
}
