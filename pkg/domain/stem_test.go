package domain

import (
	"errors"
	"math"
	"testing"
)

// Reference regression group for deep-south loblolly pine, inside bark.
var loblollyReg = RegressionCoefficients{
	Reg4A:  -0.48391,
	Reg4B:  0.93884,
	Reg17A: 0.80079,
	Reg17B: 0.57255,
}

func TestNewStemProfile_Validation(t *testing.T) {
	tests := []struct {
		name    string
		dbh     float64
		height  float64
		bark    Bark
		wantErr bool
	}{
		{"valid inside bark", 16.0, 90.0, InsideBark, false},
		{"valid outside bark", 10.0, 62.0, OutsideBark, false},
		{"zero dbh", 0, 90.0, InsideBark, true},
		{"negative dbh", -3.5, 90.0, InsideBark, true},
		{"nan dbh", math.NaN(), 90.0, InsideBark, true},
		{"height at girard", 16.0, 17.3, InsideBark, true},
		{"height below girard", 16.0, 12.0, InsideBark, true},
		{"unknown bark indicator", 16.0, 90.0, Bark(2), true},
		{"negative bark indicator", 16.0, 90.0, Bark(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStemProfile("deep south", "loblolly pine", tt.dbh, tt.height, tt.bark)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDimension) {
					t.Fatalf("expected ErrInvalidDimension, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestStemProfile_DerivedValues(t *testing.T) {
	s, err := NewStemProfile("deep south", "loblolly pine", 16.0, 90.0, InsideBark)
	if err != nil {
		t.Fatal(err)
	}

	// Both derived values require the regression group.
	if _, err := s.DBHInsideBark(); !errors.Is(err, ErrUnresolvedParameters) {
		t.Errorf("DBHInsideBark before resolve: want ErrUnresolvedParameters, got %v", err)
	}
	if _, err := s.GirardDiameter(); !errors.Is(err, ErrUnresolvedParameters) {
		t.Errorf("GirardDiameter before resolve: want ErrUnresolvedParameters, got %v", err)
	}

	s.ApplyRegression(loblollyReg)

	dib, err := s.DBHInsideBark()
	if err != nil {
		t.Fatalf("DBHInsideBark: %v", err)
	}
	if dib != 14.54 {
		t.Errorf("DBHInsideBark = %v, want 14.54", dib)
	}
	if dib >= s.DBH {
		t.Errorf("inside-bark dbh %v must be less than outside-bark dbh %v", dib, s.DBH)
	}

	girard, err := s.GirardDiameter()
	if err != nil {
		t.Fatalf("GirardDiameter: %v", err)
	}
	if girard != 13.15 {
		t.Errorf("GirardDiameter = %v, want 13.15", girard)
	}
	if girard >= s.DBH {
		t.Errorf("Girard diameter %v must be less than dbh %v", girard, s.DBH)
	}
}

func TestStemProfile_DerivedValuesFollowDimensions(t *testing.T) {
	s, err := NewStemProfile("deep south", "loblolly pine", 16.0, 90.0, InsideBark)
	if err != nil {
		t.Fatal(err)
	}
	s.ApplyRegression(loblollyReg)

	if err := s.SetDimensions(12.0, 70.0); err != nil {
		t.Fatalf("SetDimensions: %v", err)
	}

	dib, err := s.DBHInsideBark()
	if err != nil {
		t.Fatal(err)
	}
	if dib != 10.78 {
		t.Errorf("DBHInsideBark after SetDimensions = %v, want 10.78", dib)
	}
	girard, err := s.GirardDiameter()
	if err != nil {
		t.Fatal(err)
	}
	if girard != 10.03 {
		t.Errorf("GirardDiameter after SetDimensions = %v, want 10.03", girard)
	}

	if err := s.SetDimensions(16.0, 17.3); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("SetDimensions at Girard height: want ErrInvalidDimension, got %v", err)
	}
}

func TestStemProfile_GirardDiameterDomainGuard(t *testing.T) {
	// Bypassing the constructor leaves the zero height in place; the derived
	// value must fail loudly instead of dividing by a bad height.
	s := &StemProfile{Region: "deep south", Species: "loblolly pine", DBH: 16.0, TotalHeight: GirardHeight, Bark: InsideBark}
	s.ApplyRegression(loblollyReg)

	_, err := s.GirardDiameter()
	var de *DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected DomainError at height == 17.3, got %v", err)
	}
}

func TestStemProfile_GroupAtomicity(t *testing.T) {
	s, err := NewStemProfile("deep south", "loblolly pine", 16.0, 90.0, InsideBark)
	if err != nil {
		t.Fatal(err)
	}

	if s.Resolved() {
		t.Error("fresh profile must not report resolved")
	}
	if _, ok := s.Regression(); ok {
		t.Error("fresh profile must have no regression group")
	}

	s.ApplyRegression(loblollyReg)
	if s.Resolved() {
		t.Error("regression alone must not report resolved")
	}

	seg := SegmentationCoefficients{ButtR: 32.284, ButtC: 0.10449, ButtE: 158.899, LowerP: 6.3157, UpperB: 2.178477, UpperA: 0.64}
	s.ApplySegmentation(seg)
	if !s.Resolved() {
		t.Error("profile with both groups must report resolved")
	}

	// Accessors hand out copies; mutating one must not leak back.
	got, _ := s.Segmentation()
	got.ButtR = 0
	again, _ := s.Segmentation()
	if again.ButtR != 32.284 {
		t.Errorf("segmentation group mutated through accessor copy: %v", again.ButtR)
	}

	// Re-applying replaces the group wholesale.
	s.ApplyRegression(RegressionCoefficients{Reg4A: 1, Reg4B: 1, Reg17A: 1, Reg17B: 1})
	r, _ := s.Regression()
	if r.Reg4A != 1 {
		t.Errorf("re-applied regression not visible: %+v", r)
	}
}

func TestParseBark(t *testing.T) {
	tests := []struct {
		in      string
		want    Bark
		wantErr bool
	}{
		{"inside", InsideBark, false},
		{"Inside", InsideBark, false},
		{"ib", InsideBark, false},
		{"1", InsideBark, false},
		{"outside", OutsideBark, false},
		{"ob", OutsideBark, false},
		{"0", OutsideBark, false},
		{"2", 0, true},
		{"", 0, true},
		{"both", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseBark(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseBark(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseBark(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBark(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLookupError(t *testing.T) {
	err := &LookupError{
		Region:  "deep south",
		Species: "sugar maple",
		Bark:    InsideBark,
		Missing: []ParameterGroup{GroupRegression, GroupSegmentation},
	}

	if !errors.Is(err, ErrCoefficientNotFound) {
		t.Error("LookupError must unwrap to ErrCoefficientNotFound")
	}
	if !err.MissingGroup(GroupRegression) || !err.MissingGroup(GroupSegmentation) {
		t.Error("both failed groups must be reported missing")
	}
	if err.MissingGroup(GroupWeight) {
		t.Error("weight never fails lookup and must not be reported missing")
	}
}
