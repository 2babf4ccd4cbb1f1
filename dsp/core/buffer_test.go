package core

import "testing"

func TestEnsureLen(t *testing.T) {
	buf := make([]float64, 2, 8)
	out := EnsureLen(buf, 6)
	if len(out) != 6 || cap(out) != 8 {
		t.Fatalf("EnsureLen reuse: len=%d cap=%d", len(out), cap(out))
	}
	out = EnsureLen(buf, 16)
	if len(out) != 16 {
		t.Fatalf("EnsureLen grow: len=%d", len(out))
	}
	if got := EnsureLen(buf, 0); len(got) != 0 {
		t.Fatalf("EnsureLen(0): len=%d", len(got))
	}
}

func TestZeroPad(t *testing.T) {
	src := []float32{1, 2, 3}
	out := ZeroPad(src, 5)
	want := []float32{1, 2, 3, 0, 0}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d]=%v want %v", i, out[i], want[i])
		}
	}
	out[0] = 9
	if src[0] != 1 {
		t.Fatal("ZeroPad aliased its input")
	}
	if got := ZeroPad(src, 2); len(got) != 2 || got[1] != 2 {
		t.Fatalf("ZeroPad truncate: %v", got)
	}
}

func TestConversions(t *testing.T) {
	x := []float32{0.5, -1.25}
	wide := ToFloat64(x)
	back := FromFloat64[float32](wide)
	for i := range x {
		if back[i] != x[i] {
			t.Fatalf("round trip %d: %v != %v", i, back[i], x[i])
		}
	}
	Zero(wide)
	if wide[0] != 0 || wide[1] != 0 {
		t.Fatalf("Zero: %v", wide)
	}
}
