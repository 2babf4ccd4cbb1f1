package time

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-lockin/internal/testutil"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestCalculateSine(t *testing.T) {
	x := testutil.Tone[float64](10, 1000, 2, 0, 1000)
	s := Calculate(x)
	if s.Length != 1000 {
		t.Fatalf("Length=%d", s.Length)
	}
	tests := []struct {
		name      string
		got, want float64
	}{
		{"DC", s.DC, 0},
		{"RMS", s.RMS, math.Sqrt2},
		{"Peak", s.Peak, 2},
		{"Max", s.Max, 2},
		{"Min", s.Min, -2},
		{"CrestFactor", s.CrestFactor, math.Sqrt2},
		{"RMS_dB", s.RMS_dB, 20 * math.Log10(math.Sqrt2)},
	}
	for _, tt := range tests {
		if !almostEqual(tt.got, tt.want, 1e-9) {
			t.Errorf("%s=%v want %v", tt.name, tt.got, tt.want)
		}
	}
	if x[s.MaxPos] != s.Max || x[s.MinPos] != s.Min {
		t.Fatalf("positions do not point at extremes: %d %d", s.MaxPos, s.MinPos)
	}
}

func TestCalculateStdDev(t *testing.T) {
	s := Calculate([]float32{2, 4, 4, 4, 5, 5, 7, 9})
	if !almostEqual(s.DC, 5, 1e-12) {
		t.Fatalf("DC=%v", s.DC)
	}
	if want := math.Sqrt(32.0 / 7); !almostEqual(s.StdDev, want, 1e-12) {
		t.Fatalf("StdDev=%v want %v", s.StdDev, want)
	}
}

func TestCalculateEdgeCases(t *testing.T) {
	empty := Calculate([]float64(nil))
	if empty.Length != 0 || !math.IsInf(empty.RMS_dB, -1) {
		t.Fatalf("empty summary: %+v", empty)
	}
	one := Calculate([]float64{-3})
	if one.DC != -3 || one.StdDev != 0 || one.Peak != 3 || one.CrestFactor != 1 {
		t.Fatalf("single sample summary: %+v", one)
	}
	zero := Calculate(make([]float64, 4))
	if zero.CrestFactor != 0 {
		t.Fatalf("CrestFactor of silence=%v", zero.CrestFactor)
	}
}

func TestRemoveDC(t *testing.T) {
	x := testutil.Add(testutil.DC(0.75, 64), testutil.Tone[float64](4, 64, 1, 0, 64))
	mean := RemoveDC(x)
	if !almostEqual(mean, 0.75, 1e-12) {
		t.Fatalf("mean=%v", mean)
	}
	if dc := Calculate(x).DC; !almostEqual(dc, 0, 1e-12) {
		t.Fatalf("residual DC=%v", dc)
	}
	if RemoveDC([]float64{}) != 0 {
		t.Fatal("RemoveDC of empty input")
	}
}
