package geom

import (
	"math"
	"testing"
)

func TestLengthPredicateBoundaries(t *testing.T) {
	if !LengthIsZero(0) || !LengthIsZero(1e-8) || !LengthIsZero(-1e-8) {
		t.Error("values at or inside the epsilon must classify as zero")
	}
	if LengthIsZero(1.0000001e-8) || LengthIsZero(-1.0000001e-8) {
		t.Error("values outside the epsilon must not classify as zero")
	}

	if !LengthIsNegative(-2e-8) {
		t.Error("-2e-8 must classify as negative")
	}
	if LengthIsNegative(-1e-8) {
		t.Error("the length-negative bound is strict")
	}
	if LengthIsNegative(1) {
		t.Error("positive values must not classify as negative")
	}

	if !LengthIsPositive(2e-8) {
		t.Error("2e-8 must classify as positive")
	}
	if LengthIsPositive(1e-8) {
		t.Error("the length-positive bound is strict")
	}
}

func TestAnglePredicateBoundaries(t *testing.T) {
	if !AngleIsZero(0) || !AngleIsZero(9.9e-7) {
		t.Error("values inside the epsilon must classify as zero")
	}
	if AngleIsZero(1e-6) {
		t.Error("the angle-zero bound is exclusive")
	}

	// The angle bounds are non-strict, unlike the length bounds.
	if !AngleIsNegative(-1e-6) {
		t.Error("angle-negative must include the bound")
	}
	if AngleIsNegative(-9.9e-7) {
		t.Error("values inside the epsilon must not classify as negative")
	}
	if !AngleIsPositive(1e-6) {
		t.Error("angle-positive must include the bound")
	}
	if AngleIsPositive(9.9e-7) {
		t.Error("values inside the epsilon must not classify as positive")
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		a, b, relTol, absTol float64
		want                 bool
	}{
		{5, 7, 0.4, 1.0, true},  // relative term 0.4*0.5*12 = 2.4 >= 2
		{5, 7, 0.3, 1.0, false}, // relative term 1.8 < 2
		{5, 6, 0, 1.0, false},   // absolute bound is strict
		{5, 6, 0, 1.1, true},
		{1, 1, 0, 0, true}, // identical values pass the non-strict relative bound
	}
	for _, tt := range tests {
		if got := WithinTolerance(tt.a, tt.b, tt.relTol, tt.absTol); got != tt.want {
			t.Errorf("WithinTolerance(%v, %v, %v, %v) = %v, want %v",
				tt.a, tt.b, tt.relTol, tt.absTol, got, tt.want)
		}
	}
}

func TestWithinToleranceInfinities(t *testing.T) {
	inf := math.Inf(1)
	if WithinTolerance(inf, 1, 0.5, 0.5) || WithinTolerance(1, inf, 0.5, 0.5) {
		t.Error("a single infinite operand can never be within tolerance")
	}
	if WithinTolerance(inf, -inf, 0.5, 0.5) || WithinTolerance(-inf, inf, 0.5, 0.5) {
		t.Error("infinities of opposite signs can never be within tolerance")
	}
	if !WithinTolerance(inf, inf, 0.5, 0.5) || !WithinTolerance(-inf, -inf, 0.5, 0.5) {
		t.Error("infinities of the same sign compare equal")
	}
}
