package taper

import (
	"fmt"
	"math"

	"github.com/jwlunsford/stems/pkg/domain"
)

// cubicFootFactor converts a squared-diameter integral (in²·ft) to cubic
// feet: pi/576.
const cubicFootFactor = 0.005454154

// terms bundles the inputs every section formula shares: the reference
// diameter D (inside- or outside-bark depending on the profile), total
// height H, Girard diameter F, and the six segmentation coefficients in
// the lettering of the published equations.
type terms struct {
	D, H, F          float64
	r, c, e, p, b, a float64
}

// newTerms gathers and guards the shared inputs. Every estimator needs
// both coefficient groups: the segmentation group drives the sections and
// the regression group supplies D and F.
func newTerms(op string, s *domain.StemProfile) (terms, error) {
	seg, ok := s.Segmentation()
	if !ok {
		return terms{}, fmt.Errorf("%w: segmentation group required", domain.ErrUnresolvedParameters)
	}
	if s.TotalHeight <= domain.GirardHeight {
		return terms{}, &domain.DomainError{
			Op:     op,
			Reason: fmt.Sprintf("total height %v ft does not reach Girard height %v ft", s.TotalHeight, domain.GirardHeight),
		}
	}
	d := s.DBH
	if s.Bark == domain.InsideBark {
		var err error
		if d, err = s.DBHInsideBark(); err != nil {
			return terms{}, err
		}
	}
	if d <= 0 {
		return terms{}, &domain.DomainError{Op: op, Reason: fmt.Sprintf("reference diameter %v in is not positive", d)}
	}
	f, err := s.GirardDiameter()
	if err != nil {
		return terms{}, err
	}
	if f <= 0 {
		return terms{}, &domain.DomainError{Op: op, Reason: fmt.Sprintf("Girard diameter %v in is not positive", f)}
	}
	return terms{
		D: d, H: s.TotalHeight, F: f,
		r: seg.ButtR, c: seg.ButtC, e: seg.ButtE,
		p: seg.LowerP, b: seg.UpperB, a: seg.UpperA,
	}, nil
}

// DiameterAt estimates the stem diameter, in inches, at h feet above
// ground (Eq. 1 of the source publication), rounded to hundredths.
//
// The three sections are gated by strict comparisons against the 4.5 ft
// and 17.3 ft breakpoints, so at exactly those heights no section applies
// and the result is 0.00. That is the published behavior of the piecewise
// form, kept as-is.
func DiameterAt(s *domain.StemProfile, h float64) (float64, error) {
	const op = "taper.DiameterAt"
	t, err := newTerms(op, s)
	if err != nil {
		return 0, err
	}

	var d2 float64
	switch {
	case h < domain.BreastHeight:
		// Butt flare, anchored to vanish at breast height.
		relH := 1 - h/t.H
		relBH := 1 - domain.BreastHeight/t.H
		d3 := t.D * t.D * t.D
		d2 = t.D * t.D * (1 + (t.c+t.e/d3)*(math.Pow(relH, t.r)-math.Pow(relBH, t.r))/(1-math.Pow(relBH, t.r)))
	case domain.BreastHeight < h && h < domain.GirardHeight:
		// Lower stem: interpolates D² down to F² with exponent p.
		relH := math.Pow(1-h/t.H, t.p)
		relBH := math.Pow(1-domain.BreastHeight/t.H, t.p)
		relGH := math.Pow(1-domain.GirardHeight/t.H, t.p)
		d2 = t.D*t.D - (t.D*t.D-t.F*t.F)*(relBH-relH)/(relBH-relGH)
	case h > domain.GirardHeight:
		// Upper stem: two quadratic arcs joined at the merge point
		// 17.3 + a(H-17.3).
		z := (h - domain.GirardHeight) / (t.H - domain.GirardHeight)
		idM := indicator(h < domain.GirardHeight+t.a*(t.H-domain.GirardHeight))
		d2 = t.F * t.F * (t.b*(z-1)*(z-1) + idM*((1-t.b)/(t.a*t.a))*(t.a-z)*(t.a-z))
	}
	if d2 < 0 {
		return 0, &domain.DomainError{Op: op, Reason: fmt.Sprintf("negative radicand %.6g at height %v ft", d2, h)}
	}
	return round2(math.Sqrt(d2)), nil
}

// HeightAt estimates the height, in feet, at which the stem tapers to
// diameter d inches (Eq. 2), rounded to hundredths. It is the inverse of
// DiameterAt: the section is chosen by comparing d against the profile's
// D and F anchors, and the upper section is solved with the stable root
// of its quadratic.
func HeightAt(s *domain.StemProfile, d float64) (float64, error) {
	const op = "taper.HeightAt"
	t, err := newTerms(op, s)
	if err != nil {
		return 0, err
	}

	d2 := d * d
	D2 := t.D * t.D
	F2 := t.F * t.F

	var h float64
	switch {
	case d2 >= D2:
		// Butt section: invert the flare curve with the 1/r root.
		G := math.Pow(1-domain.BreastHeight/t.H, t.r)
		W := (t.c + t.e/(t.D*t.D*t.D)) / (1 - G)
		h = t.H * (1 - math.Pow((d2/D2-1)/W+G, 1/t.r))
	case d2 >= F2:
		X := math.Pow(1-domain.BreastHeight/t.H, t.p)
		Y := math.Pow(1-domain.GirardHeight/t.H, t.p)
		Z := (D2 - F2) / (X - Y)
		h = t.H * (1 - math.Pow(X-(D2-d2)/Z, 1/t.p))
	default:
		// Upper stem. Whether the merge arc participates depends on the
		// target diameter relative to the merge-point diameter b(a-1)²F².
		idM := indicator(d2 > t.b*(t.a-1)*(t.a-1)*F2)
		qa := t.b + idM*(1-t.b)/(t.a*t.a)
		qb := -2*t.b - idM*2*(1-t.b)/t.a
		qc := t.b + (1-t.b)*idM - d2/F2
		disc := qb*qb - 4*qa*qc
		if disc < 0 {
			return 0, &domain.DomainError{Op: op, Reason: fmt.Sprintf("negative quadratic discriminant %.6g for diameter %v in", disc, d)}
		}
		h = domain.GirardHeight + (t.H-domain.GirardHeight)*((-qb-math.Sqrt(disc))/(2*qa))
	}
	return round2(h), nil
}

// Volume estimates the cubic-foot volume of the stem between the lower
// and upper heights, in feet (Eq. 3), rounded to whole cubic feet. The
// squared-diameter profile is integrated in closed form over the parts of
// [lower, upper] falling in each section; the upper bound is capped at
// total height.
func Volume(s *domain.StemProfile, lower, upper float64) (float64, error) {
	const op = "taper.Volume"
	t, err := newTerms(op, s)
	if err != nil {
		return 0, err
	}

	D2 := t.D * t.D
	F2 := t.F * t.F

	var v1, v2, v3 float64
	if lower < domain.BreastHeight {
		G := math.Pow(1-domain.BreastHeight/t.H, t.r)
		W := (t.c + t.e/(t.D*t.D*t.D)) / (1 - G)
		l := math.Max(lower, 0)
		u := math.Min(upper, domain.BreastHeight)
		v1 = D2 * ((1-G*W)*(u-l) + W*(math.Pow(1-l/t.H, t.r)*(t.H-l)-math.Pow(1-u/t.H, t.r)*(t.H-u))/(t.r+1))
	}
	if lower < domain.GirardHeight && upper > domain.BreastHeight {
		X := math.Pow(1-domain.BreastHeight/t.H, t.p)
		Y := math.Pow(1-domain.GirardHeight/t.H, t.p)
		Z := (D2 - F2) / (X - Y)
		T := D2 - Z*X
		l := math.Max(lower, domain.BreastHeight)
		u := math.Min(upper, domain.GirardHeight)
		v2 = T*(u-l) + Z*(math.Pow(1-l/t.H, t.p)*(t.H-l)-math.Pow(1-u/t.H, t.p)*(t.H-u))/(t.p+1)
	}
	if upper > domain.GirardHeight {
		span := t.H - domain.GirardHeight
		l := math.Max(lower, domain.GirardHeight) - domain.GirardHeight
		u := math.Min(upper, t.H) - domain.GirardHeight
		merge := t.a * span
		i5 := indicator(l < merge)
		i6 := indicator(u < merge)
		tail := (1 - t.b) / (3 * t.a * t.a)
		v3 = F2 * (t.b*(u-l) -
			t.b*(u*u-l*l)/span +
			(t.b/3)*(cube(u)-cube(l))/(span*span) +
			(i5*tail*cube(merge-l)-i6*tail*cube(merge-u))/(span*span))
	}
	return math.Round(cubicFootFactor * (v1 + v2 + v3)), nil
}

// Weight estimates the green weight, in tons, of the stem between the
// lower and upper heights: the rounded cubic-foot volume scaled by the
// profile's tons-per-cubic-foot factor, rounded to hundredths.
func Weight(s *domain.StemProfile, lower, upper float64) (float64, error) {
	w, ok := s.Weight()
	if !ok {
		return 0, fmt.Errorf("%w: weight conversion required", domain.ErrUnresolvedParameters)
	}
	v, err := Volume(s, lower, upper)
	if err != nil {
		return 0, err
	}
	return round2(v * w.TonsPerCubicFoot), nil
}

func indicator(cond bool) float64 {
	if cond {
		return 1
	}
	return 0
}

func cube(x float64) float64 { return x * x * x }

// round2 rounds half away from zero at the second decimal, the rounding
// the published tables were validated against.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
