package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-lockin/dsp/core"
	"github.com/cwbudde/algo-lockin/dsp/window"
	"github.com/cwbudde/algo-lockin/internal/fourier"
)

// SegmentedT computes an averaged magnitude spectrum of one recording.
// Call Segmentize and then Execute; Execute segmentizes on demand.
type SegmentedT[F core.Float, C core.Complex] struct {
	samples    []F
	sampleRate F
	requested  F
	overlap    F
	windowType window.Type

	resolution F
	segLen     int
	hop        int
	win        *window.Window[F]
	nenbw      F
	enbw       F

	segments [][]F
	count    int
	spectrum []F
}

// Segmented is the float64 specialization of SegmentedT.
type Segmented = SegmentedT[float64, complex128]

// Segmented32 is the float32 specialization of SegmentedT.
type Segmented32 = SegmentedT[float32, complex64]

// Result collects an averaged spectrum with the quantities needed to
// interpret it.
type Result[F core.Float] struct {
	// Spectrum holds SegmentLength/2+1 averaged magnitudes.
	Spectrum   []F
	SampleRate F
	// Resolution is the actual bin spacing fs/SegmentLength in Hz.
	Resolution    F
	S1, S2        F
	NENBW, ENBW   F
	Segments      int
	SegmentLength int
	Overlap       F
	Window        window.Type
}

// NewSegmentedT prepares an estimate over a copy of samples.
func NewSegmentedT[F core.Float, C core.Complex](samples []F, sampleRate F, opts ...Option) (*SegmentedT[F, C], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("spectrum: %w: empty recording", core.ErrInsufficientData)
	}
	if !(sampleRate > 0) || !core.IsFinite(float64(sampleRate)) {
		return nil, fmt.Errorf("spectrum: %w: sample rate must be positive, got %v", core.ErrInvalidConfiguration, sampleRate)
	}
	if !cfg.window.Valid() {
		return nil, fmt.Errorf("spectrum: %w: unknown window %d", core.ErrInvalidConfiguration, int(cfg.window))
	}

	if cfg.idealOverlap {
		cfg.overlap = window.IdealOverlap(cfg.window)
	}
	if cfg.overlap < 0 || cfg.overlap >= 1 || math.IsNaN(cfg.overlap) {
		return nil, fmt.Errorf("spectrum: %w: overlap %v outside [0,1)", core.ErrInvalidConfiguration, cfg.overlap)
	}

	if cfg.resolution == 0 {
		cfg.resolution = math.Ceil(float64(sampleRate) / float64(len(samples)))
	}
	if !(cfg.resolution > 0) || !core.IsFinite(cfg.resolution) {
		return nil, fmt.Errorf("spectrum: %w: resolution must be positive, got %v", core.ErrInvalidConfiguration, cfg.resolution)
	}
	if cfg.resolution > float64(sampleRate) {
		return nil, fmt.Errorf("spectrum: %w: resolution %v Hz exceeds sample rate %v Hz",
			core.ErrInvalidConfiguration, cfg.resolution, sampleRate)
	}

	return &SegmentedT[F, C]{
		samples:    append([]F(nil), samples...),
		sampleRate: sampleRate,
		requested:  F(cfg.resolution),
		overlap:    F(cfg.overlap),
		windowType: cfg.window,
	}, nil
}

// NewSegmented prepares a float64 estimate. See NewSegmentedT.
func NewSegmented(samples []float64, sampleRate float64, opts ...Option) (*Segmented, error) {
	return NewSegmentedT[float64, complex128](samples, sampleRate, opts...)
}

// NewSegmented32 prepares a float32 estimate. See NewSegmentedT.
func NewSegmented32(samples []float32, sampleRate float32, opts ...Option) (*Segmented32, error) {
	return NewSegmentedT[float32, complex64](samples, sampleRate, opts...)
}

// Segmentize cuts the recording into windowed segments.
//
// The segment length is floor(fs/resolution) clamped to the recording
// length, consecutive segments start round(N*(1-overlap)) samples apart, and
// only complete segments are kept.
func (s *SegmentedT[F, C]) Segmentize() error {
	n := int(min(math.Floor(float64(s.sampleRate)/float64(s.requested)), float64(len(s.samples))))
	if n < 1 {
		return fmt.Errorf("spectrum: %w: segment length %d", core.ErrInsufficientData, n)
	}

	win, err := window.GenerateT[F](s.windowType, n)
	if err != nil {
		return fmt.Errorf("spectrum: %w", err)
	}
	nenbw, err := win.NENBW()
	if err != nil {
		return fmt.Errorf("spectrum: %w", err)
	}

	hop := max(int(math.Round(float64(n)*(1-float64(s.overlap)))), 1)
	count := 0
	if len(s.samples) >= n {
		count = (len(s.samples)-n)/hop + 1
	}
	if count == 0 {
		return fmt.Errorf("spectrum: %w: no complete segment of %d samples in %d",
			core.ErrInsufficientData, n, len(s.samples))
	}

	segments := make([][]F, count)
	for i := range segments {
		start := i * hop
		seg := make([]F, n)
		if err := win.Apply(seg, s.samples[start:start+n]); err != nil {
			return fmt.Errorf("spectrum: %w", err)
		}
		segments[i] = seg
	}

	s.segLen = n
	s.hop = hop
	s.win = win
	s.resolution = s.sampleRate / F(n)
	s.nenbw = nenbw
	s.enbw = nenbw * s.resolution
	s.segments = segments
	s.count = count
	return nil
}

// Execute averages the magnitude spectra of all segments and returns
// SegmentLength/2+1 bins. The segments are released afterwards.
func (s *SegmentedT[F, C]) Execute() ([]F, error) {
	if s.segments == nil {
		if err := s.Segmentize(); err != nil {
			return nil, err
		}
	}

	tr, err := fourier.NewReal[F, C](s.segLen)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}

	bins := tr.Bins()
	acc := make([]F, bins)
	buf := make([]C, bins)
	for _, seg := range s.segments {
		if err := tr.Forward(buf, seg); err != nil {
			return nil, fmt.Errorf("spectrum: %w", err)
		}
		AccumulateMagnitude(acc, buf)
	}

	inv := 1 / F(len(s.segments))
	for k := range acc {
		acc[k] *= inv
	}

	s.segments = nil
	s.spectrum = acc
	return acc, nil
}

// SampleRate returns the sample rate in Hz.
func (s *SegmentedT[F, C]) SampleRate() F { return s.sampleRate }

// RequestedResolution returns the resolution the estimate was configured with.
func (s *SegmentedT[F, C]) RequestedResolution() F { return s.requested }

// Resolution returns the actual bin spacing fs/SegmentLength, or 0 before
// Segmentize.
func (s *SegmentedT[F, C]) Resolution() F { return s.resolution }

// SegmentLength returns the samples per segment.
func (s *SegmentedT[F, C]) SegmentLength() int { return s.segLen }

// Hop returns the distance in samples between segment starts.
func (s *SegmentedT[F, C]) Hop() int { return s.hop }

// Segments returns the number of averaged segments.
func (s *SegmentedT[F, C]) Segments() int { return s.count }

// Overlap returns the configured overlap fraction.
func (s *SegmentedT[F, C]) Overlap() F { return s.overlap }

// Window returns the segment window, or nil before Segmentize.
func (s *SegmentedT[F, C]) Window() *window.Window[F] { return s.win }

// S1 returns the sum of the window coefficients.
func (s *SegmentedT[F, C]) S1() F {
	if s.win == nil {
		return 0
	}
	return s.win.S1
}

// S2 returns the sum of the squared window coefficients.
func (s *SegmentedT[F, C]) S2() F {
	if s.win == nil {
		return 0
	}
	return s.win.S2
}

// NENBW returns the normalized equivalent noise bandwidth in bins.
func (s *SegmentedT[F, C]) NENBW() F { return s.nenbw }

// ENBW returns the equivalent noise bandwidth in Hz.
func (s *SegmentedT[F, C]) ENBW() F { return s.enbw }

// Spectrum returns the averaged magnitudes of the last Execute.
func (s *SegmentedT[F, C]) Spectrum() []F { return s.spectrum }

// Result snapshots the estimate after Execute.
func (s *SegmentedT[F, C]) Result() *Result[F] {
	return &Result[F]{
		Spectrum:      s.spectrum,
		SampleRate:    s.sampleRate,
		Resolution:    s.resolution,
		S1:            s.S1(),
		S2:            s.S2(),
		NENBW:         s.nenbw,
		ENBW:          s.enbw,
		Segments:      s.count,
		SegmentLength: s.segLen,
		Overlap:       s.overlap,
		Window:        s.windowType,
	}
}

// EstimateT runs Segmentize and Execute in one call.
func EstimateT[F core.Float, C core.Complex](samples []F, sampleRate F, opts ...Option) (*Result[F], error) {
	s, err := NewSegmentedT[F, C](samples, sampleRate, opts...)
	if err != nil {
		return nil, err
	}
	if err := s.Segmentize(); err != nil {
		return nil, err
	}
	if _, err := s.Execute(); err != nil {
		return nil, err
	}
	return s.Result(), nil
}

// Estimate is the float64 form of EstimateT.
func Estimate(samples []float64, sampleRate float64, opts ...Option) (*Result[float64], error) {
	return EstimateT[float64, complex128](samples, sampleRate, opts...)
}
