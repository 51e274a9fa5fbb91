// Package geom provides the geometric primitives and tolerance-driven
// comparisons underlying a 3D CAD client: points, vectors, unit
// directions, transform matrices, planes and frames, parameter domains,
// and analytic curve and surface evaluation.
//
// The heavy modeling work of a CAD system (boundary representation,
// booleans, tessellation) is the business of a remote geometry kernel;
// this package is the numeric vocabulary the client speaks. Everything
// in it is a deterministic value type: no I/O, no logging, no shared
// mutable state. Distinct instances may be used freely from concurrent
// goroutines.
//
// # Tolerances
//
// Geometric equality is never bitwise. [LengthAccuracy] and
// [AngleAccuracy] classify scalars as zero, positive, or negative, and
// [WithinTolerance] is the general relative-plus-absolute comparator
// that every Equal method in the package is built on. See the
// predicate docs for the exact boundary conventions.
//
// # Primitives
//
// [Point3], [Vec3], and [UnitVec3] (plus their 2D counterparts) are
// thin wrappers over gonum's spatial vector types. A [UnitVec3] is
// normalized once at construction and guaranteed to have magnitude 1
// thereafter. [Mat3] and [Mat4] are fixed-shape row-major transforms;
// [Mat4] applies to homogeneous coordinates. [Plane] and [Frame] are
// validated orthonormal local coordinate systems.
//
// # Curves and surfaces
//
// [Curve] and [Surface] describe stateless analytic geometry that can
// be sampled: [Line], [Circle], and [Ellipse]; [PlaneSurface],
// [Cylinder], [Cone], [Sphere], and [Torus]. Sampling produces a
// [CurveEvaluation] or [SurfaceEvaluation] that computes position,
// derivatives, and curvature lazily and memoizes the results.
// [Parameterization] and [Interval] describe each variant's valid
// parameter domain.
//
// # Errors
//
// Constructors validate their input and return wrapped sentinel errors
// ([ErrShape], [ErrNotUnit], ...). Reading an unset evaluation or
// transforming a direction with a singular matrix is a programming
// defect and panics.
package geom
