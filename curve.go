package geom

// Curve is a stateless 3D curve definition. Implementations carry only
// their defining data (origin, axes, radii) and never mutate after
// construction; [Curve.Transformed] returns a new instance.
//
// This package provides the analytic variants [Line], [Circle], and
// [Ellipse]. Implementing the interface is what makes a type a curve;
// a variant that cannot compute one of the operations does not compile.
type Curve interface {
	// Parameterization describes the curve's valid parameter domain.
	Parameterization() Parameterization

	// ContainsParam reports whether t lies in the parameter domain.
	ContainsParam(t float64) bool

	// ContainsPoint reports whether pt lies on the curve within
	// [LengthAccuracy].
	ContainsPoint(pt Point3) bool

	// Transformed returns a copy of the curve moved by m. The source is
	// left untouched. m must not collapse the curve's directions;
	// rigid transforms always qualify.
	Transformed(m Mat4) Curve

	// Equal reports whether o is the same kind of curve with the same
	// defining data within tolerance. Curves of different kinds are
	// never equal.
	Equal(o Curve) bool

	// Evaluate samples the curve at parameter t.
	Evaluate(t float64) CurveEvaluation

	// ProjectPoint samples the curve at the parameter closest to pt.
	ProjectPoint(pt Point3) CurveEvaluation
}

// CurveEvaluation is the result of sampling a curve at one parameter.
// Derived properties are computed on first access and memoized, so an
// evaluation is cheap to produce and each property costs at most one
// computation regardless of how often it is read.
//
// Evaluations are disposable values scoped to their caller. The zero
// value of a concrete evaluation is unset: IsSet reports false and
// every derived accessor panics, since reading an unsampled evaluation
// is a programming defect.
type CurveEvaluation interface {
	// IsSet reports whether the evaluation was produced by sampling a
	// curve, as opposed to being a zero value.
	IsSet() bool

	// Parameter returns the parameter the curve was sampled at.
	Parameter() float64

	// Position returns the point on the curve.
	Position() Point3

	// FirstDerivative returns the first derivative with respect to the
	// parameter.
	FirstDerivative() Vec3

	// SecondDerivative returns the second derivative with respect to
	// the parameter.
	SecondDerivative() Vec3

	// Curvature returns the curvature at the point.
	Curvature() float64
}

// curveEval carries the parameter and memoization state shared by all
// concrete curve evaluations.
type curveEval struct {
	param float64
	set   bool

	pos    option[Point3]
	first  option[Vec3]
	second option[Vec3]
	curv   option[float64]
}

func newCurveEval(t float64) curveEval {
	return curveEval{param: t, set: true}
}

func (ev *curveEval) IsSet() bool { return ev.set }

func (ev *curveEval) Parameter() float64 {
	ev.mustBeSet()
	return ev.param
}

func (ev *curveEval) mustBeSet() {
	if !ev.set {
		panic("geom: evaluation has no parameter")
	}
}
