package frequency

import (
	"math"
	"testing"
)

func TestPeak(t *testing.T) {
	tests := []struct {
		name    string
		mag     []float64
		fr      float64
		bin     int
		freq    float64
		refined float64
	}{
		{"symmetric", []float64{0, 1, 4, 1, 0}, 2, 2, 4, 4},
		{"skewed", []float64{0, 2, 4, 3, 0}, 1, 2, 2, 2 + 0.5*(2-3)/(2-8+3.0)},
		{"edge", []float64{5, 1, 0}, 10, 0, 0, 0},
		{"last", []float64{0, 1, 3}, 10, 2, 20, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Peak(tt.mag, tt.fr)
			if p.Bin != tt.bin || p.Frequency != tt.freq || p.Magnitude != tt.mag[tt.bin] {
				t.Fatalf("Peak=%+v", p)
			}
			if math.Abs(p.Refined-tt.refined) > 1e-12 {
				t.Fatalf("Refined=%v want %v", p.Refined, tt.refined)
			}
		})
	}
	if p := Peak([]float32(nil), 1); p != (PeakInfo{}) {
		t.Fatalf("empty Peak=%+v", p)
	}
}

func TestCentroid(t *testing.T) {
	if c := Centroid([]float64{0, 1, 0, 1}, 5); math.Abs(c-10) > 1e-12 {
		t.Fatalf("Centroid=%v want 10", c)
	}
	if c := Centroid([]float32{0, 0, 0}, 5); c != 0 {
		t.Fatalf("Centroid of silence=%v", c)
	}
}

func TestBandwidth(t *testing.T) {
	mag := []float64{0, 0.5, 1, 0.5, 0}
	// threshold 1/sqrt2 crosses at 1+(0.7071-0.5)/0.5 and 3-(that-1)
	lo := 1 + (1/math.Sqrt2-0.5)/0.5
	want := 2 * (2 - lo)
	if bw := Bandwidth(mag, 1); math.Abs(bw-want) > 1e-12 {
		t.Fatalf("Bandwidth=%v want %v", bw, want)
	}
	if bw := Bandwidth([]float64{0, 0}, 1); bw != 0 {
		t.Fatalf("Bandwidth of silence=%v", bw)
	}
}
