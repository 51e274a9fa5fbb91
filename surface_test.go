package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/s1"
)

func testSurfaces(t *testing.T) []Surface {
	t.Helper()
	frame, err := NewFrame(Pt3(1, 2, 3), V3(1, 0, 0), V3(0, 1, 0))
	if err != nil {
		t.Fatal(err)
	}
	sphere, err := NewSphere(frame, 2)
	if err != nil {
		t.Fatal(err)
	}
	cylinder, err := NewCylinder(frame, 2)
	if err != nil {
		t.Fatal(err)
	}
	cone, err := NewCone(frame, 2, s1.Angle(math.Pi/6))
	if err != nil {
		t.Fatal(err)
	}
	torus, err := NewTorus(frame, 5, 2)
	if err != nil {
		t.Fatal(err)
	}
	return []Surface{
		NewPlaneSurface(frame.Plane),
		sphere,
		cylinder,
		cone,
		torus,
	}
}

func TestSurfaceTransformedIdentity(t *testing.T) {
	for _, s := range testSurfaces(t) {
		if !s.Transformed(Identity4).Equal(s) {
			t.Errorf("%v: the identity transform must preserve equality", s)
		}
	}
}

func TestSurfaceKindsNeverEqual(t *testing.T) {
	surfaces := testSurfaces(t)
	for i, a := range surfaces {
		for j, b := range surfaces {
			if (i == j) != a.Equal(b) {
				t.Errorf("%v and %v: equality must hold exactly for the same kind and data", a, b)
			}
		}
	}
}

func TestSurfaceEvaluationGeometry(t *testing.T) {
	uv := ParamUV{U: 0.7, V: 0.3}
	for _, s := range testSurfaces(t) {
		ev := s.Evaluate(uv)
		if !ev.IsSet() {
			t.Fatalf("%v: evaluation must be set", s)
		}
		diff(t, uv, ev.Param())

		// The normal is perpendicular to both tangents and the
		// evaluated position lies on the surface.
		n := ev.Normal().Vec()
		if !AngleIsZero(n.Dot(ev.UDerivative().Normalize())) {
			t.Errorf("%v: normal not perpendicular to the u tangent", s)
		}
		if !AngleIsZero(n.Dot(ev.VDerivative().Normalize())) {
			t.Errorf("%v: normal not perpendicular to the v tangent", s)
		}
		if !s.ContainsPoint(ev.Position()) {
			t.Errorf("%v: evaluated position not on the surface", s)
		}
		if ev.MinCurvature() > ev.MaxCurvature() {
			t.Errorf("%v: principal curvatures out of order", s)
		}
	}
}

func TestSurfaceProjectionRoundTrip(t *testing.T) {
	uv := ParamUV{U: 1.1, V: 0.4}
	for _, s := range testSurfaces(t) {
		pos := s.Evaluate(uv).Position()
		back := s.ProjectPoint(pos)
		assertNear(t, back.Position(), pos, 1e-9)
		if d := math.Abs(back.Param().U - uv.U); d > AngleAccuracy {
			t.Errorf("%v: projected u %v, want %v", s, back.Param().U, uv.U)
		}
	}
}

func TestUnsetSurfaceEvaluationPanics(t *testing.T) {
	var ev SphereEvaluation
	if ev.IsSet() {
		t.Fatal("zero-value evaluation must be unset")
	}
	assertPanics(t, func() { ev.Position() })
	assertPanics(t, func() { ev.Normal() })
	assertPanics(t, func() { ev.MinCurvature() })
}

func TestSphere(t *testing.T) {
	s, err := NewSphere(GlobalFrame(), 2)
	if err != nil {
		t.Fatal(err)
	}

	ev := s.Evaluate(ParamUV{})
	assertNear(t, ev.Position(), Pt3(2, 0, 0), 1e-12)
	assertVecNear(t, ev.Normal().Vec(), V3(1, 0, 0), 1e-12)

	// North pole.
	ev = s.Evaluate(ParamUV{U: 0, V: math.Pi / 2})
	assertNear(t, ev.Position(), Pt3(0, 0, 2), 1e-12)

	if k := ev.MinCurvature(); k != 0.5 {
		t.Errorf("got curvature %v, want 0.5", k)
	}

	proj := s.ProjectPoint(Pt3(0, 0, 7))
	assertNear(t, proj.Position(), Pt3(0, 0, 2), 1e-12)

	// The center projects to the parameter origin.
	proj = s.ProjectPoint(Pt3(0, 0, 0))
	diff(t, ParamUV{}, proj.Param())

	if !s.ContainsPoint(Pt3(0, -2, 0)) || s.ContainsPoint(Pt3(0, -2.001, 0)) {
		t.Error("sphere membership misclassified")
	}

	if _, err := NewSphere(GlobalFrame(), 0); !errors.Is(err, ErrNotPositive) {
		t.Errorf("got %v, want ErrNotPositive", err)
	}
}

func TestCylinder(t *testing.T) {
	c, err := NewCylinder(GlobalFrame(), 2)
	if err != nil {
		t.Fatal(err)
	}

	ev := c.Evaluate(ParamUV{U: math.Pi / 2, V: 3})
	assertNear(t, ev.Position(), Pt3(0, 2, 3), 1e-12)
	assertVecNear(t, ev.Normal().Vec(), V3(0, 1, 0), 1e-12)
	assertVecNear(t, ev.VDerivative(), V3(0, 0, 1), 1e-12)
	if ev.MinCurvature() != 0 || ev.MaxCurvature() != 0.5 {
		t.Errorf("got curvatures %v, %v, want 0, 0.5", ev.MinCurvature(), ev.MaxCurvature())
	}

	proj := c.ProjectPoint(Pt3(7, 0, -4))
	assertNear(t, proj.Position(), Pt3(2, 0, -4), 1e-12)

	// The v domain is unbounded, the u domain a single turn.
	pu, pv := c.ParameterizationUV()
	if !pv.Interval.IsOpen() || pu.Interval.IsOpen() {
		t.Errorf("unexpected domains u %v, v %v", pu, pv)
	}
}

func TestCone(t *testing.T) {
	cone, err := NewCone(GlobalFrame(), 2, s1.Angle(math.Pi/4))
	if err != nil {
		t.Fatal(err)
	}

	// At the base circle.
	ev := cone.Evaluate(ParamUV{})
	assertNear(t, ev.Position(), Pt3(2, 0, 0), 1e-12)

	// One slant unit up the cone the radius grows by sin(π/4).
	s := math.Sqrt2 / 2
	ev = cone.Evaluate(ParamUV{U: 0, V: 1})
	assertNear(t, ev.Position(), Pt3(2+s, 0, s), 1e-12)
	assertVecNear(t, ev.Normal().Vec(), V3(s, 0, -s), 1e-12)

	// The apex sits below the base on the axis.
	apex := cone.Apex()
	assertNear(t, apex, Pt3(0, 0, -2), 1e-12)
	if got, want := cone.ApexParam(), -2*math.Sqrt2; math.Abs(got-want) > 1e-12 {
		t.Errorf("got apex parameter %v, want %v", got, want)
	}

	// Projection clamps at the apex.
	proj := cone.ProjectPoint(Pt3(0, 0, -10))
	if got := proj.Param().V; got != cone.ApexParam() {
		t.Errorf("got v %v, want the apex parameter %v", got, cone.ApexParam())
	}

	// Half-angle domain is validated.
	if _, err := NewCone(GlobalFrame(), 2, 0); !errors.Is(err, ErrShape) {
		t.Errorf("got %v, want ErrShape", err)
	}
	if _, err := NewCone(GlobalFrame(), 2, s1.Angle(math.Pi/2)); !errors.Is(err, ErrShape) {
		t.Errorf("got %v, want ErrShape", err)
	}
}

func TestTorus(t *testing.T) {
	torus, err := NewTorus(GlobalFrame(), 5, 2)
	if err != nil {
		t.Fatal(err)
	}

	// Outer equator.
	ev := torus.Evaluate(ParamUV{})
	assertNear(t, ev.Position(), Pt3(7, 0, 0), 1e-12)
	assertVecNear(t, ev.Normal().Vec(), V3(1, 0, 0), 1e-12)
	if got, want := ev.MinCurvature(), 1.0/7.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("got min curvature %v, want %v", got, want)
	}
	if ev.MaxCurvature() != 0.5 {
		t.Errorf("got max curvature %v, want 0.5", ev.MaxCurvature())
	}

	// Top of the tube: the azimuthal section is flat there.
	ev = torus.Evaluate(ParamUV{U: 0, V: math.Pi / 2})
	assertNear(t, ev.Position(), Pt3(5, 0, 2), 1e-12)
	if !LengthIsZero(ev.MinCurvature()) {
		t.Errorf("got min curvature %v, want 0", ev.MinCurvature())
	}

	// Inner equator curves against the surface normal.
	ev = torus.Evaluate(ParamUV{U: 0, V: math.Pi})
	assertNear(t, ev.Position(), Pt3(3, 0, 0), 1e-12)
	if ev.MinCurvature() >= 0 {
		t.Errorf("got min curvature %v, want negative", ev.MinCurvature())
	}

	proj := torus.ProjectPoint(Pt3(9, 0, 0))
	assertNear(t, proj.Position(), Pt3(7, 0, 0), 1e-12)

	if _, err := NewTorus(GlobalFrame(), 2, 5); !errors.Is(err, ErrShape) {
		t.Errorf("spindle torus: got %v, want ErrShape", err)
	}
}

func TestPlaneSurface(t *testing.T) {
	s := NewPlaneSurface(XYPlane(Pt3(0, 0, 1)))
	ev := s.Evaluate(ParamUV{U: 2, V: 3})
	assertNear(t, ev.Position(), Pt3(2, 3, 1), 1e-12)
	if ev.MinCurvature() != 0 || ev.MaxCurvature() != 0 {
		t.Error("a plane is flat")
	}

	proj := s.ProjectPoint(Pt3(2, 3, 9))
	assertNear(t, proj.Position(), Pt3(2, 3, 1), 1e-12)
	diff(t, ParamUV{U: 2, V: 3}, proj.Param())
}
