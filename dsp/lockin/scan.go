package lockin

import (
	"fmt"
	"iter"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-lockin/dsp/core"
)

// maxScanPoints bounds the candidate grid of one scan.
const maxScanPoints = 1 << 24

// Frequencies returns the scan grid low + i*step for
// i < floor((high-low)/step)+1, in increasing order.
func Frequencies(low, high, step float64) ([]float64, error) {
	if !core.IsFinite(low) || !core.IsFinite(high) || !core.IsFinite(step) {
		return nil, fmt.Errorf("lockin: %w: scan range [%v, %v] step %v", core.ErrInvalidConfiguration, low, high, step)
	}
	if !(step > 0) || high < low {
		return nil, fmt.Errorf("lockin: %w: scan range [%v, %v] step %v", core.ErrInvalidConfiguration, low, high, step)
	}

	count := math.Floor((high-low)/step) + 1
	if count > maxScanPoints {
		return nil, fmt.Errorf("lockin: %w: scan of %v points", core.ErrInvalidConfiguration, count)
	}

	n := int(count)
	if n == 1 {
		return []float64{low}, nil
	}
	return floats.Span(make([]float64, n), low, low+float64(n-1)*step), nil
}

// Scan evaluates the detector at each frequency of Frequencies(low, high,
// step). The sequence is lazy: each result is computed when it is pulled,
// and ranging over it again recomputes it. An invalid range or a short
// recording yields a single error; an error at one frequency ends the
// sequence after it is yielded.
func (d *DetectorT[F, C]) Scan(samples []F, low, high, step F) iter.Seq2[Result[F], error] {
	return func(yield func(Result[F], error) bool) {
		freqs, err := Frequencies(float64(low), float64(high), float64(step))
		if err != nil {
			yield(Result[F]{}, err)
			return
		}
		if len(samples) < MinSamples {
			yield(Result[F]{}, fmt.Errorf("lockin: %w: %d samples, need at least %d",
				core.ErrInsufficientData, len(samples), MinSamples))
			return
		}

		for _, fl := range freqs {
			r, err := d.Lock(samples, F(fl))
			if !yield(r, err) || err != nil {
				return
			}
		}
	}
}

// Collect drains a scan into a slice, stopping at the first error.
func Collect[F core.Float](seq iter.Seq2[Result[F], error]) ([]Result[F], error) {
	var out []Result[F]
	for r, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Columns splits results into lock frequency, magnitude and phase arrays.
func Columns[F core.Float](results []Result[F]) (freq, mag, phase []F) {
	freq = make([]F, len(results))
	mag = make([]F, len(results))
	phase = make([]F, len(results))
	for i, r := range results {
		freq[i] = r.LockFrequency
		mag[i] = r.R
		phase[i] = r.Phase
	}
	return freq, mag, phase
}
