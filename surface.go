package geom

// Surface is a stateless 3D surface definition over a two-dimensional
// parameter domain. Like [Curve] implementations, surfaces carry only
// their defining data and never mutate; [Surface.Transformed] returns a
// new instance.
//
// This package provides the analytic variants [PlaneSurface],
// [Cylinder], [Cone], [Sphere], and [Torus].
type Surface interface {
	// ParameterizationUV describes the valid u and v parameter domains.
	ParameterizationUV() (u, v Parameterization)

	// ContainsParam reports whether uv lies in the parameter domain.
	ContainsParam(uv ParamUV) bool

	// ContainsPoint reports whether pt lies on the surface within
	// [LengthAccuracy].
	ContainsPoint(pt Point3) bool

	// Transformed returns a copy of the surface moved by m. The source
	// is left untouched. m must not collapse the surface's directions;
	// rigid transforms always qualify.
	Transformed(m Mat4) Surface

	// Equal reports whether o is the same kind of surface with the same
	// defining data within tolerance. Surfaces of different kinds are
	// never equal.
	Equal(o Surface) bool

	// Evaluate samples the surface at the parameter pair uv.
	Evaluate(uv ParamUV) SurfaceEvaluation

	// ProjectPoint samples the surface at the parameter pair closest to
	// pt.
	ProjectPoint(pt Point3) SurfaceEvaluation
}

// SurfaceEvaluation is the result of sampling a surface at one
// parameter pair. Derived properties are computed on first access and
// memoized. The zero value of a concrete evaluation is unset: IsSet
// reports false and every derived accessor panics.
type SurfaceEvaluation interface {
	// IsSet reports whether the evaluation was produced by sampling a
	// surface, as opposed to being a zero value.
	IsSet() bool

	// Param returns the parameter pair the surface was sampled at.
	Param() ParamUV

	// Position returns the point on the surface.
	Position() Point3

	// Normal returns the outward-facing unit normal at the point.
	Normal() UnitVec3

	// UDerivative returns the first partial derivative with respect to
	// u.
	UDerivative() Vec3

	// VDerivative returns the first partial derivative with respect to
	// v.
	VDerivative() Vec3

	// MinCurvature returns the smaller principal curvature at the
	// point.
	MinCurvature() float64

	// MaxCurvature returns the larger principal curvature at the point.
	MaxCurvature() float64
}

// surfEval carries the parameter pair and memoization state shared by
// all concrete surface evaluations.
type surfEval struct {
	uv  ParamUV
	set bool

	pos    option[Point3]
	normal option[UnitVec3]
	du     option[Vec3]
	dv     option[Vec3]
	kmin   option[float64]
	kmax   option[float64]
}

func newSurfEval(uv ParamUV) surfEval {
	return surfEval{uv: uv, set: true}
}

func (ev *surfEval) IsSet() bool { return ev.set }

func (ev *surfEval) Param() ParamUV {
	ev.mustBeSet()
	return ev.uv
}

func (ev *surfEval) mustBeSet() {
	if !ev.set {
		panic("geom: evaluation has no parameter")
	}
}
