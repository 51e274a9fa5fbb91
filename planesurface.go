package geom

import "fmt"

// PlaneSurface is the unbounded flat surface spanned by a [Plane]'s two
// directions, parameterized by the distances along them.
type PlaneSurface struct {
	plane Plane
}

var _ Surface = PlaneSurface{}

// NewPlaneSurface constructs the surface spanned by plane.
func NewPlaneSurface(plane Plane) PlaneSurface {
	return PlaneSurface{plane: plane}
}

// Plane returns the defining plane.
func (s PlaneSurface) Plane() Plane { return s.plane }

func (s PlaneSurface) String() string {
	return fmt.Sprintf("PlaneSurface(%v)", s.plane)
}

// ParameterizationUV implements [Surface]. Both parameters are signed
// distances over the full real line.
func (s PlaneSurface) ParameterizationUV() (u, v Parameterization) {
	p := Parameterization{
		Form:     OpenForm,
		Type:     LinearType,
		Interval: FullInterval(),
	}
	return p, p
}

// ContainsParam implements [Surface].
func (s PlaneSurface) ContainsParam(uv ParamUV) bool {
	pu, pv := s.ParameterizationUV()
	return pu.Interval.Contains(uv.U) && pv.Interval.Contains(uv.V)
}

// ContainsPoint implements [Surface].
func (s PlaneSurface) ContainsPoint(pt Point3) bool {
	return s.plane.ContainsPoint(pt)
}

// Transformed implements [Surface].
func (s PlaneSurface) Transformed(m Mat4) Surface {
	p, err := s.plane.Transformed(m)
	if err != nil {
		panic(err)
	}
	return PlaneSurface{plane: p}
}

// Equal implements [Surface].
func (s PlaneSurface) Equal(o Surface) bool {
	os, ok := o.(PlaneSurface)
	if !ok {
		return false
	}
	return s.plane.Equal(os.plane)
}

// Evaluate implements [Surface].
func (s PlaneSurface) Evaluate(uv ParamUV) SurfaceEvaluation {
	return &PlaneEvaluation{surface: s, surfEval: newSurfEval(uv)}
}

// ProjectPoint implements [Surface]. Projection onto a plane drops the
// normal component.
func (s PlaneSurface) ProjectPoint(pt Point3) SurfaceEvaluation {
	d := pt.Sub(s.plane.Origin())
	return s.Evaluate(ParamUV{
		U: d.Dot(s.plane.DirX().Vec()),
		V: d.Dot(s.plane.DirY().Vec()),
	})
}

// PlaneEvaluation is a [SurfaceEvaluation] on a [PlaneSurface].
type PlaneEvaluation struct {
	surface PlaneSurface
	surfEval
}

var _ SurfaceEvaluation = (*PlaneEvaluation)(nil)

// Position implements [SurfaceEvaluation].
func (ev *PlaneEvaluation) Position() Point3 {
	ev.mustBeSet()
	if !ev.pos.isSet {
		ev.pos.set(ev.surface.plane.Local(Pt2(ev.uv.U, ev.uv.V)))
	}
	return ev.pos.value
}

// Normal implements [SurfaceEvaluation].
func (ev *PlaneEvaluation) Normal() UnitVec3 {
	ev.mustBeSet()
	return ev.surface.plane.Normal()
}

// UDerivative implements [SurfaceEvaluation].
func (ev *PlaneEvaluation) UDerivative() Vec3 {
	ev.mustBeSet()
	return ev.surface.plane.DirX().Vec()
}

// VDerivative implements [SurfaceEvaluation].
func (ev *PlaneEvaluation) VDerivative() Vec3 {
	ev.mustBeSet()
	return ev.surface.plane.DirY().Vec()
}

// MinCurvature implements [SurfaceEvaluation]. A plane is flat.
func (ev *PlaneEvaluation) MinCurvature() float64 {
	ev.mustBeSet()
	return 0
}

// MaxCurvature implements [SurfaceEvaluation]. A plane is flat.
func (ev *PlaneEvaluation) MaxCurvature() float64 {
	ev.mustBeSet()
	return 0
}
