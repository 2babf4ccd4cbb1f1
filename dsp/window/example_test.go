package window_test

import (
	"fmt"

	"github.com/cwbudde/algo-lockin/dsp/window"
)

func ExampleGenerate() {
	w, err := window.Generate(window.TypeHann, 5)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f S1=%.2f S2=%.3f\n", w.Coeffs, w.S1, w.S2)
	// Output:
	// [0.00 0.50 1.00 0.50 0.00] S1=2.00 S2=1.500
}

func ExampleParseType() {
	fmt.Println(window.ParseType("KAISER35"), window.IdealOverlap(window.ParseType("KAISER35")))
	fmt.Println(window.ParseType("unknown"))
	// Output:
	// KAISER35 0.647
	// RECTANGULAR
}
