package lockin

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-lockin/dsp/buffer"
	"github.com/cwbudde/algo-lockin/dsp/core"
	"github.com/cwbudde/algo-lockin/dsp/filter/fir"
	"github.com/cwbudde/algo-lockin/dsp/window"
)

// MinSamples is the shortest recording the detector accepts.
const MinSamples = fir.MinFFTLength

// Result is the detector output at one lock frequency.
type Result[F core.Float] struct {
	SampleRate    F
	LockFrequency F
	// X is the averaged in-phase component.
	X F
	// Y is the averaged quadrature component.
	Y F
	// R is the magnitude sqrt(X^2+Y^2).
	R F
	// Phase is atan2(Y, X) in radians.
	Phase F
}

// Option configures a detector.
type Option func(*config)

type config struct {
	window window.Type
	phase  float64
}

// WithWindow selects the window of the low-pass kernels. The default is
// fir.DefaultWindow.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
	}
}

// WithPhaseOffset shifts both references by phi radians.
func WithPhaseOffset(phi float64) Option {
	return func(c *config) {
		c.phase = phi
	}
}

// DetectorT is a lock-in detector in precision F. Each Lock call owns the
// reference product buffers and the low-pass plan it takes from the
// detector, so a detector may be shared between goroutines.
type DetectorT[F core.Float, C core.Complex] struct {
	sampleRate F
	transition F
	phase      float64
	lowPass    *fir.FilterT[F, C]
	scratch    *buffer.Pool[F]
	plans      planCache[F, C]
}

// planCache keeps idle low-pass plans by input length.
type planCache[F core.Float, C core.Complex] struct {
	mu   sync.Mutex
	idle map[int][]*fir.PlanT[F, C]
}

func (c *planCache[F, C]) get(f *fir.FilterT[F, C], n int) (*fir.PlanT[F, C], error) {
	c.mu.Lock()
	if free := c.idle[n]; len(free) > 0 {
		p := free[len(free)-1]
		c.idle[n] = free[:len(free)-1]
		c.mu.Unlock()
		return p, nil
	}
	c.mu.Unlock()
	return f.Plan(n)
}

func (c *planCache[F, C]) put(p *fir.PlanT[F, C]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.idle == nil {
		c.idle = make(map[int][]*fir.PlanT[F, C])
	}
	c.idle[p.Len()] = append(c.idle[p.Len()], p)
}

// count returns the number of idle plans for inputs of n samples.
func (c *planCache[F, C]) count(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.idle[n])
}

// Detector is the float64 specialization of DetectorT.
type Detector = DetectorT[float64, complex128]

// Detector32 is the float32 specialization of DetectorT.
type Detector32 = DetectorT[float32, complex64]

// NewT prepares a detector whose branch filters are low-pass filters at
// the transition frequency.
func NewT[F core.Float, C core.Complex](sampleRate, transition F, opts ...Option) (*DetectorT[F, C], error) {
	cfg := config{window: fir.DefaultWindow}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !core.IsFinite(cfg.phase) {
		return nil, fmt.Errorf("lockin: %w: phase offset %v", core.ErrInvalidConfiguration, cfg.phase)
	}

	lp, err := fir.NewT[F, C](fir.KindLowPass, sampleRate, []F{transition}, fir.WithWindow(cfg.window))
	if err != nil {
		return nil, fmt.Errorf("lockin: %w", err)
	}

	return &DetectorT[F, C]{
		sampleRate: sampleRate,
		transition: transition,
		phase:      cfg.phase,
		lowPass:    lp,
		scratch:    buffer.NewPool[F](),
	}, nil
}

// New prepares a float64 detector. See NewT.
func New(sampleRate, transition float64, opts ...Option) (*Detector, error) {
	return NewT[float64, complex128](sampleRate, transition, opts...)
}

// New32 prepares a float32 detector. See NewT.
func New32(sampleRate, transition float32, opts ...Option) (*Detector32, error) {
	return NewT[float32, complex64](sampleRate, transition, opts...)
}

// SampleRate returns the sample rate in Hz.
func (d *DetectorT[F, C]) SampleRate() F { return d.sampleRate }

// Transition returns the low-pass transition frequency in Hz.
func (d *DetectorT[F, C]) Transition() F { return d.transition }

// Window returns the window of the low-pass kernels.
func (d *DetectorT[F, C]) Window() window.Type { return d.lowPass.Window() }

// Lock evaluates the detector at lockFreq.
func (d *DetectorT[F, C]) Lock(samples []F, lockFreq F) (Result[F], error) {
	if len(samples) < MinSamples {
		return Result[F]{}, fmt.Errorf("lockin: %w: %d samples, need at least %d",
			core.ErrInsufficientData, len(samples), MinSamples)
	}
	if !core.IsFinite(float64(lockFreq)) {
		return Result[F]{}, fmt.Errorf("lockin: %w: lock frequency %v", core.ErrInvalidConfiguration, lockFreq)
	}

	xb := d.scratch.Get(len(samples))
	defer d.scratch.Put(xb)
	yb := d.scratch.Get(len(samples))
	defer d.scratch.Put(yb)
	x, y := xb.Samples(), yb.Samples()
	DoublePSD(x, y, samples, d.sampleRate, lockFreq, F(d.phase))

	plan, err := d.plans.get(d.lowPass, len(samples))
	if err != nil {
		return Result[F]{}, fmt.Errorf("lockin: %w", err)
	}
	defer d.plans.put(plan)

	fx, err := plan.Apply(x)
	if err != nil {
		return Result[F]{}, fmt.Errorf("lockin: in-phase branch: %w", err)
	}
	fy, err := plan.Apply(y)
	if err != nil {
		return Result[F]{}, fmt.Errorf("lockin: quadrature branch: %w", err)
	}

	xAvg := core.Average(fx.Samples)
	yAvg := core.Average(fy.Samples)
	return Result[F]{
		SampleRate:    d.sampleRate,
		LockFrequency: lockFreq,
		X:             xAvg,
		Y:             yAvg,
		R:             F(math.Hypot(float64(xAvg), float64(yAvg))),
		Phase:         F(math.Atan2(float64(yAvg), float64(xAvg))),
	}, nil
}

// DoublePSD multiplies samples by the references 2*sin(z) into x and
// 2*cos(z) into y, where z = i*2*pi*lockFreq/sampleRate + phase. x, y and
// samples must have the same length.
func DoublePSD[F core.Float](x, y, samples []F, sampleRate, lockFreq, phase F) {
	step := 2 * math.Pi * float64(lockFreq) / float64(sampleRate)
	for i, s := range samples {
		sin, cos := math.Sincos(float64(i)*step + float64(phase))
		x[i] = 2 * s * F(sin)
		y[i] = 2 * s * F(cos)
	}
}

// CalculateLock runs a float64 detector with a zero phase offset.
func CalculateLock(samples []float64, sampleRate, lockFreq, transition float64) (Result[float64], error) {
	return CalculateLockPhase(samples, sampleRate, lockFreq, transition, 0)
}

// CalculateLockPhase runs a float64 detector whose references are shifted
// by phase radians.
func CalculateLockPhase(samples []float64, sampleRate, lockFreq, transition, phase float64) (Result[float64], error) {
	if len(samples) < MinSamples {
		return Result[float64]{}, fmt.Errorf("lockin: %w: %d samples, need at least %d",
			core.ErrInsufficientData, len(samples), MinSamples)
	}
	d, err := New(sampleRate, transition, WithPhaseOffset(phase))
	if err != nil {
		return Result[float64]{}, err
	}
	return d.Lock(samples, lockFreq)
}
