package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-lockin/dsp/core"
	"github.com/cwbudde/algo-lockin/dsp/signal"
)

func ExampleGenerator_Tones() {
	g := signal.NewGenerator([]core.ProcessorOption{
		core.WithSampleRate(8),
		core.WithLSB(0.01),
	})
	x, err := g.Tones([]signal.Tone{{Frequency: 1, Amplitude: 1}}, 4)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f\n", x)
	// Output:
	// [0.00 0.71 1.00 0.71]
}
