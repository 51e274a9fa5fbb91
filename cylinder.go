package geom

import (
	"fmt"
	"math"
)

// Cylinder is an unbounded circular cylinder around a frame's z axis.
// The u parameter is the azimuth from the frame's x axis; the v
// parameter is the signed distance along the axis.
type Cylinder struct {
	frame  Frame
	radius float64
}

var _ Surface = Cylinder{}

// NewCylinder constructs a cylinder of the given radius around the
// frame's z axis. The radius must be positive within [LengthAccuracy].
func NewCylinder(frame Frame, radius float64) (Cylinder, error) {
	if !LengthIsPositive(radius) {
		return Cylinder{}, fmt.Errorf("%w: cylinder radius %g", ErrNotPositive, radius)
	}
	return Cylinder{frame: frame, radius: radius}, nil
}

// Frame returns the cylinder's local coordinate system.
func (c Cylinder) Frame() Frame { return c.frame }

// Origin returns the point on the axis at v = 0.
func (c Cylinder) Origin() Point3 { return c.frame.Origin() }

// Radius returns the cylinder's radius.
func (c Cylinder) Radius() float64 { return c.radius }

func (c Cylinder) String() string {
	return fmt.Sprintf("Cylinder(origin: %v, radius: %g)", c.Origin(), c.radius)
}

// ParameterizationUV implements [Surface].
func (c Cylinder) ParameterizationUV() (u, v Parameterization) {
	u = Parameterization{
		Form:     ClosedForm,
		Type:     CircularType,
		Interval: NewInterval(0, 2*math.Pi),
	}
	v = Parameterization{
		Form:     OpenForm,
		Type:     LinearType,
		Interval: FullInterval(),
	}
	return u, v
}

// ContainsParam implements [Surface].
func (c Cylinder) ContainsParam(uv ParamUV) bool {
	pu, pv := c.ParameterizationUV()
	return pu.Interval.Contains(uv.U) && pv.Interval.Contains(uv.V)
}

// ContainsPoint implements [Surface].
func (c Cylinder) ContainsPoint(pt Point3) bool {
	d := pt.Sub(c.Origin())
	x := d.Dot(c.frame.DirX().Vec())
	y := d.Dot(c.frame.DirY().Vec())
	return LengthIsZero(math.Hypot(x, y) - c.radius)
}

// Transformed implements [Surface]. m is expected to preserve angles
// and lengths; the radius is carried over unchanged.
func (c Cylinder) Transformed(m Mat4) Surface {
	p, err := c.frame.Plane.Transformed(m)
	if err != nil {
		panic(err)
	}
	return Cylinder{frame: Frame{p}, radius: c.radius}
}

// Equal implements [Surface].
func (c Cylinder) Equal(o Surface) bool {
	oc, ok := o.(Cylinder)
	if !ok {
		return false
	}
	return c.frame.Equal(oc.frame.Plane) &&
		WithinTolerance(c.radius, oc.radius, LengthAccuracy, LengthAccuracy)
}

// Evaluate implements [Surface].
func (c Cylinder) Evaluate(uv ParamUV) SurfaceEvaluation {
	return &CylinderEvaluation{cylinder: c, surfEval: newSurfEval(uv)}
}

// ProjectPoint implements [Surface]. A point on the axis is equidistant
// from every azimuth and projects to u = 0.
func (c Cylinder) ProjectPoint(pt Point3) SurfaceEvaluation {
	d := pt.Sub(c.Origin())
	x := d.Dot(c.frame.DirX().Vec())
	y := d.Dot(c.frame.DirY().Vec())
	z := d.Dot(c.frame.DirZ().Vec())
	u := 0.0
	if !LengthIsZero(x) || !LengthIsZero(y) {
		u = math.Atan2(y, x)
		if u < 0 {
			u += 2 * math.Pi
		}
	}
	return c.Evaluate(ParamUV{U: u, V: z})
}

// CylinderEvaluation is a [SurfaceEvaluation] on a [Cylinder].
type CylinderEvaluation struct {
	cylinder Cylinder
	surfEval
}

var _ SurfaceEvaluation = (*CylinderEvaluation)(nil)

// radial returns the outward unit direction at the evaluation's
// azimuth.
func (ev *CylinderEvaluation) radial() Vec3 {
	f := ev.cylinder.frame
	sinU, cosU := math.Sincos(ev.uv.U)
	return f.DirX().Vec().Mul(cosU).Add(f.DirY().Vec().Mul(sinU))
}

// Position implements [SurfaceEvaluation].
func (ev *CylinderEvaluation) Position() Point3 {
	ev.mustBeSet()
	if !ev.pos.isSet {
		c := ev.cylinder
		ev.pos.set(c.Origin().
			Translate(ev.radial().Mul(c.radius)).
			Translate(c.frame.DirZ().Vec().Mul(ev.uv.V)))
	}
	return ev.pos.value
}

// Normal implements [SurfaceEvaluation].
func (ev *CylinderEvaluation) Normal() UnitVec3 {
	ev.mustBeSet()
	if !ev.normal.isSet {
		ev.normal.set(UnitVec3{ev.radial()})
	}
	return ev.normal.value
}

// UDerivative implements [SurfaceEvaluation].
func (ev *CylinderEvaluation) UDerivative() Vec3 {
	ev.mustBeSet()
	if !ev.du.isSet {
		f := ev.cylinder.frame
		sinU, cosU := math.Sincos(ev.uv.U)
		r := ev.cylinder.radius
		ev.du.set(f.DirX().Vec().Mul(-r * sinU).Add(f.DirY().Vec().Mul(r * cosU)))
	}
	return ev.du.value
}

// VDerivative implements [SurfaceEvaluation].
func (ev *CylinderEvaluation) VDerivative() Vec3 {
	ev.mustBeSet()
	return ev.cylinder.frame.DirZ().Vec()
}

// MinCurvature implements [SurfaceEvaluation]. The ruling direction is
// straight.
func (ev *CylinderEvaluation) MinCurvature() float64 {
	ev.mustBeSet()
	return 0
}

// MaxCurvature implements [SurfaceEvaluation]. The circumferential
// section is a circle of the cylinder's radius.
func (ev *CylinderEvaluation) MaxCurvature() float64 {
	ev.mustBeSet()
	return 1 / ev.cylinder.radius
}
