package time

import (
	"math"

	"github.com/cwbudde/algo-lockin/dsp/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds time-domain statistics of a recording.
//
//nolint:revive
type Summary struct {
	Length      int     `yaml:"length"`
	DC          float64 `yaml:"dc"` // mean
	RMS         float64 `yaml:"rms"`
	RMS_dB      float64 `yaml:"rms_db"`
	StdDev      float64 `yaml:"std_dev"` // unbiased
	Min         float64 `yaml:"min"`
	MinPos      int     `yaml:"min_pos"`
	Max         float64 `yaml:"max"`
	MaxPos      int     `yaml:"max_pos"`
	Peak        float64 `yaml:"peak"` // max(|max|, |min|)
	CrestFactor float64 `yaml:"crest_factor"`
}

// Calculate computes the summary of samples. An empty input yields a zero
// summary with RMS_dB at -Inf.
func Calculate[F core.Float](samples []F) Summary {
	if len(samples) == 0 {
		return Summary{RMS_dB: math.Inf(-1)}
	}

	x := core.ToFloat64(samples)
	s := Summary{Length: len(x)}

	if len(x) > 1 {
		s.DC, s.StdDev = stat.MeanStdDev(x, nil)
	} else {
		s.DC = x[0]
	}

	s.RMS = math.Sqrt(floats.Dot(x, x) / float64(len(x)))
	s.RMS_dB = core.LinearToDB(s.RMS)
	s.MinPos = floats.MinIdx(x)
	s.MaxPos = floats.MaxIdx(x)
	s.Min = x[s.MinPos]
	s.Max = x[s.MaxPos]
	s.Peak = math.Max(math.Abs(s.Min), math.Abs(s.Max))
	if s.RMS > 0 {
		s.CrestFactor = s.Peak / s.RMS
	}
	return s
}

// RemoveDC subtracts the mean from samples in place and returns the mean.
func RemoveDC[F core.Float](samples []F) F {
	if len(samples) == 0 {
		return 0
	}
	mean := core.Average(samples)
	for i := range samples {
		samples[i] -= mean
	}
	return mean
}
