package geom

import (
	"fmt"
	"math"

	"github.com/golang/geo/r1"
)

// ParamForm classifies the overall shape of a parameter domain.
type ParamForm int

const (
	// OpenForm marks a domain whose ends do not meet.
	OpenForm ParamForm = iota
	// ClosedForm marks a domain whose ends meet but do not repeat.
	ClosedForm
	// PeriodicForm marks a domain whose ends meet and repeat.
	PeriodicForm
	// OtherForm marks a domain with none of the above structure.
	OtherForm
)

func (f ParamForm) String() string {
	switch f {
	case OpenForm:
		return "open"
	case ClosedForm:
		return "closed"
	case PeriodicForm:
		return "periodic"
	case OtherForm:
		return "other"
	default:
		panic("unreachable")
	}
}

// ParamType classifies how a parameter maps to distance along the
// curve or surface.
type ParamType int

const (
	// LinearType marks a parameter proportional to distance.
	LinearType ParamType = iota
	// CircularType marks a parameter proportional to angle.
	CircularType
	// OtherType marks any other mapping.
	OtherType
)

func (t ParamType) String() string {
	switch t {
	case LinearType:
		return "linear"
	case CircularType:
		return "circular"
	case OtherType:
		return "other"
	default:
		panic("unreachable")
	}
}

// Interval is a range of parameter values. Either bound may be
// infinite. It is backed by [r1.Interval].
type Interval struct {
	inner r1.Interval
}

// NewInterval returns the interval [start, end].
func NewInterval(start, end float64) Interval {
	return Interval{r1.Interval{Lo: start, Hi: end}}
}

// FullInterval returns the interval (-∞, +∞).
func FullInterval() Interval {
	return NewInterval(math.Inf(-1), math.Inf(1))
}

// Start returns the lower bound.
func (iv Interval) Start() float64 { return iv.inner.Lo }

// End returns the upper bound.
func (iv Interval) End() float64 { return iv.inner.Hi }

func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.inner.Lo, iv.inner.Hi)
}

// IsOpen reports whether the interval extends to infinity at both ends.
// An interval with one finite and one infinite bound is neither open
// nor closed.
func (iv Interval) IsOpen() bool {
	return math.IsInf(iv.inner.Lo, -1) && math.IsInf(iv.inner.Hi, 1)
}

// IsClosed reports whether both bounds are finite.
func (iv Interval) IsClosed() bool {
	return !math.IsInf(iv.inner.Lo, 0) && !math.IsInf(iv.inner.Hi, 0)
}

// Span returns end − start. It fails with [ErrNotClosed] unless the
// interval is closed; callers should check [Interval.IsClosed] first.
func (iv Interval) Span() (float64, error) {
	if !iv.IsClosed() {
		return 0, fmt.Errorf("%w: %v has no span", ErrNotClosed, iv)
	}
	return iv.inner.Length(), nil
}

// Contains reports whether t lies within the interval, bounds included.
func (iv Interval) Contains(t float64) bool {
	return iv.inner.Contains(t)
}

// Parameterization describes the valid parameter domain of one
// dimension of a curve or surface. Form and type are independent
// classifications of the same underlying interval.
type Parameterization struct {
	Form     ParamForm
	Type     ParamType
	Interval Interval
}

func (p Parameterization) String() string {
	return fmt.Sprintf("%v %v %v", p.Form, p.Type, p.Interval)
}

// ParamUV is a position in a surface's two-dimensional parameter
// domain.
type ParamUV struct {
	U float64
	V float64
}

func (uv ParamUV) String() string {
	return fmt.Sprintf("(u: %g, v: %g)", uv.U, uv.V)
}
