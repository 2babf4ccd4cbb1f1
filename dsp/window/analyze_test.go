package window

import "testing"

func TestAnalyze(t *testing.T) {
	tests := []struct {
		typ      Type
		nenbw    float64
		scallop  float64
		sidelobe float64
	}{
		{TypeRectangular, 1, -3.92, -13.26},
		{TypeHann, 1.5, -1.42, -31.47},
		{TypeHamming, 1.363, -1.75, -42.7},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			w, err := Generate(tt.typ, 256)
			if err != nil {
				t.Fatal(err)
			}
			a := Analyze(w.Coeffs)
			if !almostEqual(a.NENBW, tt.nenbw, 0.02) {
				t.Errorf("NENBW=%v want %v", a.NENBW, tt.nenbw)
			}
			if !almostEqual(a.ScallopLossdB, tt.scallop, 0.05) {
				t.Errorf("scallop=%v want %v", a.ScallopLossdB, tt.scallop)
			}
			if !almostEqual(a.HighestSidelobedB, tt.sidelobe, 0.5) {
				t.Errorf("sidelobe=%v want %v", a.HighestSidelobedB, tt.sidelobe)
			}
			if a.Bandwidth3dB <= 0.8 || a.Bandwidth3dB > 2 {
				t.Errorf("3 dB bandwidth=%v", a.Bandwidth3dB)
			}
		})
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	if a := Analyze(nil); a != (Analysis{}) {
		t.Fatalf("Analyze(nil)=%+v", a)
	}
}
