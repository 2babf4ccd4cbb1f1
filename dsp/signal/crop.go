package signal

import (
	"fmt"

	"github.com/cwbudde/algo-lockin/dsp/core"
)

// Crop averages each run of group adjacent samples into one and returns the
// shorter recording with its sample rate divided by group. A trailing
// incomplete run is dropped.
func Crop[F core.Float](samples []F, sampleRate F, group int) ([]F, F, error) {
	if group < 1 {
		return nil, 0, fmt.Errorf("signal: %w: crop group must be >= 1: %d", core.ErrInvalidConfiguration, group)
	}
	if group == 1 {
		return append([]F(nil), samples...), sampleRate, nil
	}

	n := len(samples) / group
	if n == 0 {
		return nil, 0, fmt.Errorf("signal: %w: %d samples cannot fill a group of %d",
			core.ErrInsufficientData, len(samples), group)
	}

	out := make([]F, n)
	for k := range out {
		out[k] = core.Average(samples[k*group : (k+1)*group])
	}
	return out, sampleRate / F(group), nil
}
