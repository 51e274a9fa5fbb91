package geom

import (
	"errors"
	"math"
	"testing"
)

func TestNewEllipseValidatesRadii(t *testing.T) {
	plane := XYPlane(Pt3(0, 0, 0))
	if _, err := NewEllipse(plane, 0, 1); !errors.Is(err, ErrNotPositive) {
		t.Errorf("got %v, want ErrNotPositive", err)
	}
	if _, err := NewEllipse(plane, 2, -1); !errors.Is(err, ErrNotPositive) {
		t.Errorf("got %v, want ErrNotPositive", err)
	}
	if _, err := NewEllipse(plane, 1, 2); !errors.Is(err, ErrShape) {
		t.Errorf("major < minor: got %v, want ErrShape", err)
	}
}

func TestEllipseEvaluate(t *testing.T) {
	e, err := NewEllipse(XYPlane(Pt3(0, 0, 0)), 3, 2)
	if err != nil {
		t.Fatal(err)
	}

	ev := e.Evaluate(0)
	assertNear(t, ev.Position(), Pt3(3, 0, 0), 1e-12)
	assertVecNear(t, ev.FirstDerivative(), V3(0, 2, 0), 1e-12)
	assertVecNear(t, ev.SecondDerivative(), V3(-3, 0, 0), 1e-12)
	// At the end of the major axis the curvature is a/b².
	if got, want := ev.Curvature(), 3.0/4.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("got curvature %v, want %v", got, want)
	}

	ev = e.Evaluate(math.Pi / 2)
	assertNear(t, ev.Position(), Pt3(0, 2, 0), 1e-12)
	// At the end of the minor axis the curvature is b/a².
	if got, want := ev.Curvature(), 2.0/9.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("got curvature %v, want %v", got, want)
	}
}

func TestEllipseEccentricity(t *testing.T) {
	e, _ := NewEllipse(XYPlane(Pt3(0, 0, 0)), 5, 3)
	if got := e.Eccentricity(); math.Abs(got-0.8) > 1e-12 {
		t.Errorf("got eccentricity %v, want 0.8", got)
	}
}

func TestEllipseProjectPointAxes(t *testing.T) {
	e, _ := NewEllipse(XYPlane(Pt3(0, 0, 0)), 3, 2)

	ev := e.ProjectPoint(Pt3(10, 0, 0))
	if math.Abs(ev.Parameter()) > AngleAccuracy {
		t.Errorf("got parameter %v, want 0", ev.Parameter())
	}
	assertNear(t, ev.Position(), Pt3(3, 0, 0), 1e-6)

	ev = e.ProjectPoint(Pt3(0, -10, 0))
	if math.Abs(ev.Parameter()-3*math.Pi/2) > AngleAccuracy {
		t.Errorf("got parameter %v, want 3π/2", ev.Parameter())
	}

	// The center is nearest to the ends of the minor axis.
	ev = e.ProjectPoint(Pt3(0, 0, 0))
	if math.Abs(ev.Parameter()-math.Pi/2) > AngleAccuracy {
		t.Errorf("got parameter %v, want π/2", ev.Parameter())
	}
}

func TestEllipseProjectPointIsStationary(t *testing.T) {
	e, _ := NewEllipse(XYPlane(Pt3(1, -1, 0)), 4, 2)
	for _, pt := range []Point3{
		Pt3(4, 3, 0),
		Pt3(-2, 1, 0),
		Pt3(2, -4, 3),
		Pt3(1.5, -0.5, 0),
	} {
		ev := e.ProjectPoint(pt)
		// At the nearest parameter the chord is perpendicular to the
		// tangent.
		chord := pt.Sub(ev.Position())
		dot := chord.Dot(ev.FirstDerivative())
		if math.Abs(dot) > 1e-6 {
			t.Errorf("project %v: residual %v not stationary", pt, dot)
		}
		// And no sampled parameter does better.
		best := pt.Distance(ev.Position())
		for i := 0; i < 64; i++ {
			s := 2 * math.Pi * float64(i) / 64
			if d := pt.Distance(e.Evaluate(s).Position()); d < best-1e-9 {
				t.Errorf("project %v: parameter %v is closer than the projection", pt, s)
			}
		}
	}
}

func TestEllipseContainsPoint(t *testing.T) {
	e, _ := NewEllipse(XYPlane(Pt3(0, 0, 0)), 3, 2)
	if !e.ContainsPoint(Pt3(3, 0, 0)) || !e.ContainsPoint(Pt3(0, -2, 0)) {
		t.Error("point on the ellipse not detected")
	}
	if e.ContainsPoint(Pt3(3.01, 0, 0)) || e.ContainsPoint(Pt3(0, 0, 0)) {
		t.Error("point off the ellipse misdetected")
	}
}

func TestEllipseTransformedIdentity(t *testing.T) {
	e, _ := NewEllipse(XYPlane(Pt3(1, 2, 3)), 3, 2)
	if !e.Transformed(Identity4).Equal(e) {
		t.Error("the identity transform must preserve equality")
	}
}

func TestEllipseEqual(t *testing.T) {
	a, _ := NewEllipse(XYPlane(Pt3(0, 0, 0)), 3, 2)
	b, _ := NewEllipse(XYPlane(Pt3(0, 0, 0)), 3, 2+1e-12)
	if !a.Equal(b) {
		t.Error("ellipses within tolerance must compare equal")
	}
	c, _ := NewCircle(XYPlane(Pt3(0, 0, 0)), 3)
	if a.Equal(c) {
		t.Error("curves of different kinds are never equal")
	}
}
