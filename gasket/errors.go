package gasket

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is.  Every seed failure is a *SeedError wrapping
// exactly one of the first four.
var (
	ErrSeedParse                  = errors.New("could not parse input seed")
	ErrNegativeCurvatureMissing   = errors.New("no circle has negative curvature (there cannot be any inscribed circles)")
	ErrMultipleNegativeCurvatures = errors.New("there may only be one circle with negative curvature")
	ErrDescartesIdentityViolated  = errors.New("provided curvatures do not satisfy Descartes's Theorem")
	ErrNoValidRoot                = errors.New("no root of the complex Descartes equation places the fourth circle")
	ErrExpansionBudget            = errors.New("expansion budget exhausted")
)

// SeedErrorKind says which seed check failed.
type SeedErrorKind int

const (
	SeedParseError SeedErrorKind = iota
	NegativeCurvatureMissing
	MultipleNegativeCurvatures
	DescartesIdentityViolated
)

func (k SeedErrorKind) String() string {
	switch k {
	case SeedParseError:
		return "SeedParseError"
	case NegativeCurvatureMissing:
		return "NegativeCurvatureMissing"
	case MultipleNegativeCurvatures:
		return "MultipleNegativeCurvatures"
	case DescartesIdentityViolated:
		return "DescartesIdentityViolated"
	}
	return fmt.Sprintf("SeedErrorKind(%d)", int(k))
}

func (k SeedErrorKind) sentinel() error {
	switch k {
	case NegativeCurvatureMissing:
		return ErrNegativeCurvatureMissing
	case MultipleNegativeCurvatures:
		return ErrMultipleNegativeCurvatures
	case DescartesIdentityViolated:
		return ErrDescartesIdentityViolated
	}
	return ErrSeedParse
}

// SeedError is a rejected seed.  Generation never starts after one.
//
//	var seedErr *gasket.SeedError
//	if errors.As(err, &seedErr) {
//	    fmt.Println(seedErr.Kind) // "MultipleNegativeCurvatures"
//	}
type SeedError struct {
	// Kind is the check that failed.
	Kind SeedErrorKind

	// Input is the seed as given, for messages.
	Input string

	// Wrapped is the underlying cause, e.g. a strconv error.  May be nil.
	Wrapped error
}

func newSeedError(kind SeedErrorKind, input string, wrapped error) *SeedError {
	return &SeedError{Kind: kind, Input: input, Wrapped: wrapped}
}

func (e *SeedError) Error() string {
	msg := e.Kind.sentinel().Error()
	if e.Input != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Input)
	}
	if e.Wrapped != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Wrapped)
	}
	return msg
}

// Unwrap exposes both the kind's sentinel and the wrapped cause.
func (e *SeedError) Unwrap() []error {
	if e.Wrapped == nil {
		return []error{e.Kind.sentinel()}
	}
	return []error{e.Kind.sentinel(), e.Wrapped}
}

// PlacementError reports a seed that validated but could not be laid out
// in floating point.
type PlacementError struct {
	Curvatures [4]int64
	Wrapped    error
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("placing seed %v: %v", e.Curvatures, e.Wrapped)
}

func (e *PlacementError) Unwrap() error {
	return e.Wrapped
}
