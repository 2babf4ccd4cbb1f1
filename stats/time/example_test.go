package time_test

import (
	"fmt"

	timestats "github.com/cwbudde/algo-lockin/stats/time"
)

func ExampleCalculate() {
	s := timestats.Calculate([]float64{1, -1, 1, -1})
	fmt.Printf("rms=%.1f peak=%.1f\n", s.RMS, s.Peak)

	// Output:
	// rms=1.0 peak=1.0
}

func ExampleRemoveDC() {
	x := []float64{1, 2, 3}
	mean := timestats.RemoveDC(x)
	fmt.Println(mean, x)

	// Output:
	// 2 [-1 0 1]
}
