package lockin_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-lockin/dsp/lockin"
)

func ExampleCalculateLock() {
	const fs = 8192.0
	in := make([]float64, 8192)
	for i := range in {
		in[i] = 0.5 * math.Sin(2*math.Pi*512*float64(i)/fs+0.25)
	}

	r, err := lockin.CalculateLock(in, fs, 512, 50)
	if err != nil {
		panic(err)
	}
	fmt.Printf("R=%.2f phase=%.2f\n", r.R, r.Phase)
	// Output:
	// R=0.50 phase=0.25
}
