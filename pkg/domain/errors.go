package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDimension is returned when a stem is described with dimensions
// the profile equations are not defined for (dbh <= 0, height <= 17.3, or an
// unknown bark indicator).
var ErrInvalidDimension = errors.New("invalid stem dimension")

// ErrUnresolvedParameters is returned when an estimator is invoked before
// the coefficient group it depends on has been resolved. The legacy
// behavior of returning 0.0 in that situation is deliberately not kept: a
// zero would mask missing species or region rows.
var ErrUnresolvedParameters = errors.New("stem parameters not resolved")

// ErrCoefficientNotFound is reported by providers when no row matches the
// requested keys. Matching is exact on region/species strings and on the
// bark indicator; there is no fuzzy fallback.
var ErrCoefficientNotFound = errors.New("no matching coefficient row")

// LookupError reports which coefficient groups could not be resolved for a
// stem. Groups that did resolve remain applied, so estimators depending only
// on those may still be used.
type LookupError struct {
	Region  string
	Species string
	Bark    Bark
	Missing []ParameterGroup
}

func (e *LookupError) Error() string {
	names := make([]string, len(e.Missing))
	for i, g := range e.Missing {
		names[i] = string(g)
	}
	return fmt.Sprintf("no %s coefficients for species %q (region %q, %s bark)",
		strings.Join(names, " or "), e.Species, e.Region, e.Bark)
}

// Unwrap lets errors.Is(err, ErrCoefficientNotFound) match a LookupError.
func (e *LookupError) Unwrap() error { return ErrCoefficientNotFound }

// MissingGroup reports whether the named group was among the failed lookups.
func (e *LookupError) MissingGroup(g ParameterGroup) bool {
	for _, m := range e.Missing {
		if m == g {
			return true
		}
	}
	return false
}

// DomainError reports a mathematical domain violation while evaluating the
// profile equations: division by zero at a section breakpoint, a negative
// radicand, or a negative quadratic discriminant. These are surfaced to the
// caller, never masked with a sentinel value.
type DomainError struct {
	Op     string // estimator being evaluated, e.g. "taper.DiameterAt"
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}
