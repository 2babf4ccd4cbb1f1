package main

import (
	"fmt"

	"github.com/cwbudde/algo-lockin/dsp/signal"
	"github.com/cwbudde/algo-lockin/flatbin"
	"github.com/cwbudde/algo-lockin/internal/logging"
	timestats "github.com/cwbudde/algo-lockin/stats/time"
)

// recording is an input file after cropping.
type recording struct {
	Path       string            `yaml:"path"`
	SampleRate float64           `yaml:"sample_rate"`
	Crop       int               `yaml:"crop"`
	Stats      timestats.Summary `yaml:"stats"`
	samples    []sample
}

func (a *app) readInput(path string) (*recording, error) {
	raw, err := flatbin.ReadFile[sample](path, a.cfg.Input.Width)
	if err != nil {
		return nil, err
	}
	samples, fs, err := signal.Crop(raw, sample(a.cfg.Input.SampleRate), a.cfg.Input.Crop)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	rec := &recording{
		Path:       path,
		SampleRate: float64(fs),
		Crop:       a.cfg.Input.Crop,
		Stats:      timestats.Calculate(samples),
		samples:    samples,
	}
	a.log.Info("read recording", logging.Fields{
		"path":        path,
		"samples":     len(samples),
		"sample_rate": rec.SampleRate,
		"rms":         rec.Stats.RMS,
		"dc":          rec.Stats.DC,
	})
	return rec, nil
}

// headerFields parses the configured header list and warns about names it
// skips.
func (a *app) headerFields() []flatbin.Field {
	fields, unknown := flatbin.ParseFields(a.cfg.Header)
	for _, name := range unknown {
		a.log.Warn("skipping unknown header field", logging.Fields{"field": name})
	}
	return fields
}

func (a *app) writeOutput(path string, h flatbin.Header, payloads ...[]sample) error {
	if err := flatbin.WriteFile(path, a.headerFields(), h, payloads...); err != nil {
		return err
	}
	n := 0
	for _, p := range payloads {
		n += len(p)
	}
	a.log.Info("wrote record", logging.Fields{"path": path, "values": n})
	return nil
}

// noiseHeader fills the window sums and noise bandwidths of h.
func noiseHeader(h flatbin.Header, n int, s1, s2 float64) flatbin.Header {
	h.S1, h.S2 = s1, s2
	if s1 != 0 {
		h.NENBW = float64(n) * s2 / (s1 * s1)
		h.ENBW = h.NENBW * h.Resolution
	}
	return h
}
