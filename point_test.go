package geom

import (
	"errors"
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt3(-10, 0, 1), Pt3(0, 0, 1).Translate(V3(-10, 0, 0)))
	diff(t, V3(3, 4, 5), Pt3(4, 6, 8).Sub(Pt3(1, 2, 3)))
	diff(t, Pt3(1, 1, 1), Pt3(0, 0, 0).Midpoint(Pt3(2, 2, 2)))
	diff(t, Pt2(-10, 0), Pt2(0, 0).Translate(V2(-10, 0)))
}

func TestPointDistance(t *testing.T) {
	if d := Pt3(0, 10, 0).Distance(Pt3(0, 5, 0)); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := Pt3(-11, 1, 0).Distance(Pt3(-7, -2, 0)); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := Pt2(0, 10).Distance(Pt2(0, 5)); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointEqualIsToleranceBased(t *testing.T) {
	p := Pt3(1, 2, 3)
	if !p.Equal(Pt3(1+1e-12, 2, 3-1e-12)) {
		t.Error("points within tolerance must compare equal")
	}
	if p.Equal(Pt3(1.1, 2, 3)) {
		t.Error("distinct points must not compare equal")
	}
}

func TestPointFromSlice(t *testing.T) {
	p, err := NewPoint3FromSlice([]float64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt3(1, 2, 3), p)

	if _, err := NewPoint3FromSlice([]float64{1, 2}); !errors.Is(err, ErrShape) {
		t.Errorf("got %v, want ErrShape", err)
	}
	if _, err := NewPoint2FromSlice([]float64{1, 2, 3}); !errors.Is(err, ErrShape) {
		t.Errorf("got %v, want ErrShape", err)
	}
}

func TestPointClassification(t *testing.T) {
	if Pt3(1, 2, 3).IsInf() || Pt3(1, 2, 3).IsNaN() {
		t.Error("finite point misclassified")
	}
	if !Pt3(math.Inf(1), 0, 0).IsInf() {
		t.Error("infinite point not detected")
	}
	if !Pt3(0, math.NaN(), 0).IsNaN() {
		t.Error("NaN point not detected")
	}
}
