package testutil

import (
	"math"
	"testing"
)

func TestTone(t *testing.T) {
	x := Tone[float64](1, 4, 2, math.Pi/2, 4)
	want := []float64{2, 0, -2, 0}
	for i := range want {
		if math.Abs(x[i]-want[i]) > 1e-12 {
			t.Fatalf("x[%d]=%v want %v", i, x[i], want[i])
		}
	}
	x32 := Tone[float32](1, 4, 2, 0, 4)
	if math.Abs(float64(x32[1])-2) > 1e-6 {
		t.Fatalf("float32 x[1]=%v", x32[1])
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(7, 0.5, 100)
	b := DeterministicNoise(7, 0.5, 100)
	c := DeterministicNoise(8, 0.5, 100)
	same := true
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded noise differs at %d", i)
		}
		if math.Abs(a[i]) > 0.5 {
			t.Fatalf("a[%d]=%v out of range", i, a[i])
		}
		same = same && a[i] == c[i]
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestTwoToneAndRMS(t *testing.T) {
	x := TwoTone(1000, 3000, 8000, 8000)
	if got := RMS(x); math.Abs(got-1) > 1e-9 {
		t.Fatalf("RMS=%v want 1", got)
	}
	if got := RMS(DC(-3, 10)); got != 3 {
		t.Fatalf("RMS(DC)=%v want 3", got)
	}
	if got := RMS([]float32(nil)); got != 0 {
		t.Fatalf("RMS(nil)=%v", got)
	}
	if got := Add([]float64{1, 2, 3}, []float64{1, 1}); len(got) != 2 || got[1] != 3 {
		t.Fatalf("Add=%v", got)
	}
}
