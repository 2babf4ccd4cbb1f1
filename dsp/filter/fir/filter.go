package fir

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-lockin/dsp/core"
	"github.com/cwbudde/algo-lockin/dsp/window"
	"github.com/cwbudde/algo-lockin/internal/fourier"
)

// MinFFTLength is the smallest transform length a filter works with.
const MinFFTLength = 2048

// FilterT is a windowed-sinc filter in precision F with spectra in C.
// It holds only its description; every Apply call owns its buffers.
type FilterT[F core.Float, C core.Complex] struct {
	kind       Kind
	sampleRate F
	f1, f2     F
	cfg        config
}

// Filter is the float64 specialization of FilterT.
type Filter = FilterT[float64, complex128]

// Filter32 is the float32 specialization of FilterT.
type Filter32 = FilterT[float32, complex64]

// Result is the output of one Apply call.
type Result[F core.Float] struct {
	// Samples is the filtered signal. Its length is max(len(input), MinFFTLength).
	Samples []F
	// S1 and S2 are the sums of the kernel window.
	S1, S2 F
	// Response is the kernel magnitude per bin, set with WithResponse.
	Response []F
	// Spectrum is |X|*|K|/sqrt(2) per bin, set with WithSpectrum.
	Spectrum []F
}

// NewT describes a filter of the given kind. Low-pass and high-pass take
// one transition frequency, band-pass and band-stop take the lower and upper
// edge, and KindNone takes none. Every frequency must lie strictly between
// zero and the Nyquist frequency, and band edges must increase.
func NewT[F core.Float, C core.Complex](kind Kind, sampleRate F, transitions []F, opts ...Option) (*FilterT[F, C], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if !kind.valid() {
		return nil, fmt.Errorf("fir: %w: unknown filter kind %d", core.ErrInvalidConfiguration, int(kind))
	}
	if !cfg.window.Valid() {
		return nil, fmt.Errorf("fir: %w: unknown window %d", core.ErrInvalidConfiguration, int(cfg.window))
	}
	if !(sampleRate > 0) || !core.IsFinite(float64(sampleRate)) {
		return nil, fmt.Errorf("fir: %w: sample rate must be positive, got %v", core.ErrInvalidConfiguration, sampleRate)
	}
	if want := kind.Transitions(); len(transitions) != want {
		return nil, fmt.Errorf("fir: %w: %s needs %d transition frequencies, got %d",
			core.ErrInvalidConfiguration, kind, want, len(transitions))
	}

	f := &FilterT[F, C]{kind: kind, sampleRate: sampleRate, cfg: cfg}
	if kind == KindNone {
		return f, nil
	}

	nyquist := sampleRate / 2
	for _, ft := range transitions {
		if !core.IsFinite(float64(ft)) || !(ft > 0) || !(ft < nyquist) {
			return nil, fmt.Errorf("fir: %w: transition frequency %v outside (0, %v)",
				core.ErrInvalidConfiguration, ft, nyquist)
		}
	}

	f.f1 = transitions[0]
	if len(transitions) == 2 {
		f.f2 = transitions[1]
		if !(f.f1 < f.f2) {
			return nil, fmt.Errorf("fir: %w: band edges %v and %v are not increasing",
				core.ErrInvalidConfiguration, f.f1, f.f2)
		}
	}
	return f, nil
}

// New describes a float64 filter. See NewT.
func New(kind Kind, sampleRate float64, transitions []float64, opts ...Option) (*Filter, error) {
	return NewT[float64, complex128](kind, sampleRate, transitions, opts...)
}

// New32 describes a float32 filter. See NewT.
func New32(kind Kind, sampleRate float32, transitions []float32, opts ...Option) (*Filter32, error) {
	return NewT[float32, complex64](kind, sampleRate, transitions, opts...)
}

// NewBandT describes a band-pass or band-stop filter by its center
// frequency and width; the edges are center-width/2 and center+width/2.
func NewBandT[F core.Float, C core.Complex](kind Kind, sampleRate, center, width F, opts ...Option) (*FilterT[F, C], error) {
	if kind != KindBandPass && kind != KindBandStop {
		return nil, fmt.Errorf("fir: %w: %s is not a band filter", core.ErrInvalidConfiguration, kind)
	}
	if !(width > 0) {
		return nil, fmt.Errorf("fir: %w: band width must be positive, got %v", core.ErrInvalidConfiguration, width)
	}
	return NewT[F, C](kind, sampleRate, []F{center - width/2, center + width/2}, opts...)
}

// NewBand describes a float64 band filter. See NewBandT.
func NewBand(kind Kind, sampleRate, center, width float64, opts ...Option) (*Filter, error) {
	return NewBandT[float64, complex128](kind, sampleRate, center, width, opts...)
}

// Apply filters samples with a float64 filter described by its arguments.
func Apply(kind Kind, samples, transitions []float64, sampleRate float64, opts ...Option) (*Result[float64], error) {
	f, err := New(kind, sampleRate, transitions, opts...)
	if err != nil {
		return nil, err
	}
	return f.Apply(samples)
}

// Kind returns the filter kind.
func (f *FilterT[F, C]) Kind() Kind { return f.kind }

// SampleRate returns the sample rate in Hz.
func (f *FilterT[F, C]) SampleRate() F { return f.sampleRate }

// Transitions returns the transition frequencies in Hz.
func (f *FilterT[F, C]) Transitions() []F {
	switch f.kind.Transitions() {
	case 1:
		return []F{f.f1}
	case 2:
		return []F{f.f1, f.f2}
	default:
		return nil
	}
}

// Window returns the window type applied to the kernel.
func (f *FilterT[F, C]) Window() window.Type { return f.cfg.window }

// Apply filters samples. The input is not modified.
//
// The transform length is L = max(len(samples), MinFFTLength). The input is
// zero-padded to L, its spectrum multiplied bin by bin with |K|/sqrt(2) where
// K is the spectrum of the windowed kernel, and transformed back. The
// inverse is scaled by sqrt(2)/L so a tone in the pass band keeps its
// amplitude.
func (f *FilterT[F, C]) Apply(samples []F) (*Result[F], error) {
	p, err := f.Plan(len(samples))
	if err != nil {
		return nil, err
	}
	return p.Apply(samples)
}

// PlanT is a filter prepared for inputs of one length. It keeps the
// transform and the kernel magnitude between Apply calls. A PlanT is not
// safe for concurrent use.
type PlanT[F core.Float, C core.Complex] struct {
	filter *FilterT[F, C]
	n      int
	tr     *fourier.Real[F, C]
	gain   []F
	s1, s2 F
	spec   []C
}

// Plan prepares the transform and kernel magnitude for inputs of n samples.
func (f *FilterT[F, C]) Plan(n int) (*PlanT[F, C], error) {
	if n < 1 {
		return nil, fmt.Errorf("fir: %w: empty input", core.ErrInsufficientData)
	}

	fftLen := max(n, MinFFTLength)
	tr, err := fourier.NewReal[F, C](fftLen)
	if err != nil {
		return nil, fmt.Errorf("fir: %w", err)
	}
	bins := tr.Bins()

	p := &PlanT[F, C]{
		filter: f,
		n:      n,
		tr:     tr,
		gain:   make([]F, bins),
		spec:   make([]C, bins),
	}
	if f.kind == KindNone {
		for k := range p.gain {
			p.gain[k] = 1
		}
		p.s1, p.s2 = F(n), F(n)
		return p, nil
	}

	kernel, win, err := f.Kernel(n)
	if err != nil {
		return nil, err
	}
	p.s1, p.s2 = win.S1, win.S2
	if err := tr.Forward(p.spec, core.ZeroPad(kernel, fftLen)); err != nil {
		return nil, fmt.Errorf("fir: kernel transform: %w", err)
	}
	for k, z := range p.spec {
		p.gain[k] = fourier.Abs[F](z)
	}
	return p, nil
}

// Len returns the input length the plan was prepared for.
func (p *PlanT[F, C]) Len() int { return p.n }

// Apply filters samples, which must hold exactly Len values. See
// FilterT.Apply.
func (p *PlanT[F, C]) Apply(samples []F) (*Result[F], error) {
	if len(samples) != p.n {
		return nil, fmt.Errorf("fir: %w: plan for %d samples applied to %d",
			core.ErrInvalidConfiguration, p.n, len(samples))
	}

	fftLen := p.tr.Len()
	res := &Result[F]{S1: p.s1, S2: p.s2}
	if p.filter.cfg.response {
		res.Response = append([]F(nil), p.gain...)
	}

	if err := p.tr.Forward(p.spec, core.ZeroPad(samples, fftLen)); err != nil {
		return nil, fmt.Errorf("fir: input transform: %w", err)
	}

	if p.filter.cfg.spectrum {
		res.Spectrum = make([]F, len(p.spec))
	}
	invSqrt2 := F(1 / math.Sqrt2)
	for k, z := range p.spec {
		g := p.gain[k] * invSqrt2
		p.spec[k] = fourier.Scale(z, g)
		if res.Spectrum != nil {
			res.Spectrum[k] = fourier.Abs[F](z) * g
		}
	}

	out := make([]F, fftLen)
	if err := p.tr.Inverse(out, p.spec); err != nil {
		return nil, fmt.Errorf("fir: inverse transform: %w", err)
	}
	sqrt2 := F(math.Sqrt2)
	for i := range out {
		out[i] *= sqrt2
	}

	res.Samples = out
	return res, nil
}
