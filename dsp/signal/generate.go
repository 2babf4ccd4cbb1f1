package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-lockin/dsp/core"
)

// Tone is one sinusoidal component amplitude*sin(2*pi*Frequency*t + Phase).
type Tone struct {
	Frequency float64 `yaml:"frequency"`
	Amplitude float64 `yaml:"amplitude"`
	Phase     float64 `yaml:"phase"`
}

// ReferenceTones are the components of the reference recording: a 2 Vrms
// tone at 234.32432 Hz and a 0.5 mVrms tone near 2132 Hz.
var ReferenceTones = []Tone{
	{Frequency: 234.32432, Amplitude: 2 * math.Sqrt2},
	{Frequency: 2132.00000001, Amplitude: 5e-4 * math.Sqrt2, Phase: 1.345},
}

// ReferenceLSB is the quantization step of the reference recording in volts.
const ReferenceLSB = 1e-3

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Sine generates amplitude*sin(2*pi*freqHz*t + phase).
func (g *Generator) Sine(freqHz, amplitude, phase float64, samples int) ([]float64, error) {
	return g.Tones([]Tone{{Frequency: freqHz, Amplitude: amplitude, Phase: phase}}, samples)
}

// Tones generates the sum of tones, quantized to the configured LSB.
func (g *Generator) Tones(tones []Tone, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: %w: samples must be > 0: %d", core.ErrInvalidConfiguration, samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("signal: %w: sample rate must be > 0: %f", core.ErrInvalidConfiguration, g.cfg.SampleRate)
	}

	out := make([]float64, samples)
	for i := range out {
		t := float64(i) / g.cfg.SampleRate
		var u float64
		for _, tone := range tones {
			u += tone.Amplitude * math.Sin(2*math.Pi*tone.Frequency*t+tone.Phase)
		}
		out[i] = u
	}
	Quantize(out, g.cfg.LSB)
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: %w: samples must be > 0: %d", core.ErrInvalidConfiguration, samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: %w: noise amplitude must be >= 0: %f", core.ErrInvalidConfiguration, amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	Quantize(out, g.cfg.LSB)
	return out, nil
}

// Quantize rounds each value to the nearest multiple of lsb in place.
// A non-positive lsb leaves data unchanged.
func Quantize(data []float64, lsb float64) {
	if lsb <= 0 {
		return
	}
	for i, v := range data {
		data[i] = math.Floor(v/lsb+0.5) * lsb
	}
}
