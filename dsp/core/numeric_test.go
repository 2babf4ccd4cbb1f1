package core

import (
	"math"
	"testing"
)

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestAverageStrategiesAgree(t *testing.T) {
	for _, n := range []int{1, 2, 999, 1000, 1001, 4096} {
		x := make([]float64, n)
		var sum float64
		for i := range x {
			x[i] = math.Sin(0.37*float64(i)) + 0.25
			sum += x[i]
		}
		want := sum / float64(n)
		got := Average(x)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("n=%d: Average=%v want %v", n, got, want)
		}
	}
}

func TestAverageFloat32(t *testing.T) {
	x := make([]float32, 5000)
	for i := range x {
		x[i] = 3
	}
	if got := Average(x); got != 3 {
		t.Fatalf("Average=%v want 3", got)
	}
}

func TestAverageEmpty(t *testing.T) {
	if got := Average([]float64(nil)); got != 0 {
		t.Fatalf("Average(nil)=%v want 0", got)
	}
}

func TestWrapPhase(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-5 * math.Pi / 2, -math.Pi / 2},
	}
	for _, tt := range tests {
		if got := WrapPhase(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("WrapPhase(%v)=%v want %v", tt.in, got, tt.want)
		}
	}
}

func TestLinearToDB(t *testing.T) {
	if got := LinearToDB(10); math.Abs(got-20) > 1e-12 {
		t.Fatalf("LinearToDB(10)=%v want 20", got)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("LinearToDB(0) should be -Inf")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("LinearToDB(-1) should be NaN")
	}
}

func TestPrecisionBits(t *testing.T) {
	if got := PrecisionBits[float32](); got != 24 {
		t.Fatalf("float32: got %d", got)
	}
	if got := PrecisionBits[float64](); got != 53 {
		t.Fatalf("float64: got %d", got)
	}
}
