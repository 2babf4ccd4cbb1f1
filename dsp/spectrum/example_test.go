package spectrum_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-lockin/dsp/spectrum"
	"github.com/cwbudde/algo-lockin/dsp/window"
)

func ExampleEstimate() {
	const fs = 1000.0
	in := make([]float64, 10000)
	for i := range in {
		in[i] = math.Sin(2 * math.Pi * 120 * float64(i) / fs)
	}

	res, err := spectrum.Estimate(in, fs,
		spectrum.WithResolution(3),
		spectrum.WithWindow(window.TypeHamming),
		spectrum.WithIdealOverlap(),
	)
	if err != nil {
		panic(err)
	}
	fmt.Printf("N=%d fr=%.4f Hz segments=%d\n", res.SegmentLength, res.Resolution, res.Segments)
	// Output:
	// N=333 fr=3.0030 Hz segments=58
}
