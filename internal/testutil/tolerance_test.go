package testutil

import "testing"

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 2})
	if err != nil {
		t.Fatal(err)
	}
	if d != 1 {
		t.Fatalf("MaxAbsDiff=%v want 1", d)
	}
	if _, err := MaxAbsDiff([]float32{1}, []float32{1, 2}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestRequireHelpers(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1, 2 + 1e-10}, 1e-9)
	RequireFinite(t, []float32{0, 1, -1})
}
