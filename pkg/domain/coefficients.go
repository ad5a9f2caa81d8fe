package domain

import (
	"fmt"
	"strings"
)

// Reference heights of the segmented profile model, in feet above ground.
const (
	// BreastHeight is the standard measurement height for dbh.
	BreastHeight = 4.5

	// GirardHeight is the taper-curve anchor height; the diameter predicted
	// there ("F") joins the lower and upper stem sections.
	GirardHeight = 17.3
)

// DefaultTonsPerCubicFoot is applied when a species has no weight entry.
// A missing weight row is a documented default, not an error.
const DefaultTonsPerCubicFoot = 0.022

// Bark selects whether predicted diameters are measured inside or outside
// the bark layer. Only the two published indicator values are valid.
type Bark int

const (
	OutsideBark Bark = 0
	InsideBark  Bark = 1
)

// Valid reports whether b is one of the two published indicator values.
func (b Bark) Valid() bool {
	return b == OutsideBark || b == InsideBark
}

func (b Bark) String() string {
	switch b {
	case OutsideBark:
		return "outside"
	case InsideBark:
		return "inside"
	default:
		return fmt.Sprintf("bark(%d)", int(b))
	}
}

// ParseBark converts a user-facing spelling ("inside", "outside", "1", "0")
// to a Bark indicator.
func ParseBark(s string) (Bark, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inside", "ib", "1":
		return InsideBark, nil
	case "outside", "ob", "0":
		return OutsideBark, nil
	default:
		return 0, fmt.Errorf("%w: bark indicator %q (want inside or outside)", ErrInvalidDimension, s)
	}
}

// RegressionCoefficients hold the fitted linear terms of Eq. 7 (inside-bark
// dbh from outside-bark dbh) and Eq. 10 (diameter at Girard height).
type RegressionCoefficients struct {
	Reg4A  float64 // Eq. 7 intercept
	Reg4B  float64 // Eq. 7 slope on dbh
	Reg17A float64 // Eq. 10 intercept
	Reg17B float64 // Eq. 10 slope on (17.3/H)^2
}

// SegmentationCoefficients shape the three sections of the taper curve
// (Eq. 1): butt below 4.5 ft, lower stem between 4.5 and 17.3 ft, and upper
// stem above 17.3 ft.
type SegmentationCoefficients struct {
	ButtR  float64 // butt-section exponent
	ButtC  float64 // butt-section scale
	ButtE  float64 // butt-section scale on 1/D^3
	LowerP float64 // lower-stem exponent
	UpperB float64 // upper-stem curvature
	UpperA float64 // merge point as a fraction of the height above 17.3 ft
}

// WeightCoefficient converts cubic-foot volume to green weight in tons.
type WeightCoefficient struct {
	TonsPerCubicFoot float64
}

// ParameterGroup names one of the three coefficient groups a provider can
// resolve. Used by LookupError to report which lookups missed.
type ParameterGroup string

const (
	GroupRegression   ParameterGroup = "regression"
	GroupSegmentation ParameterGroup = "segmentation"
	GroupWeight       ParameterGroup = "weight"
)
