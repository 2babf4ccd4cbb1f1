package lockin

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-lockin/dsp/core"
	"github.com/cwbudde/algo-lockin/dsp/filter/fir"
	"github.com/cwbudde/algo-lockin/dsp/window"
	"github.com/cwbudde/algo-lockin/internal/testutil"
)

const (
	testRate = 8192.0
	testLen  = 8192
	testLock = 1024.0
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func phaseDiff(a, b float64) float64 {
	return math.Abs(core.WrapPhase(a - b))
}

func TestLockRecoversAmplitudeAndPhase(t *testing.T) {
	tests := []struct {
		amp, phase float64
	}{
		{1, 0},
		{1.5, 0.7},
		{0.25, -2.1},
		{3, math.Pi / 2},
	}
	for _, tt := range tests {
		in := testutil.Tone[float64](testLock, testRate, tt.amp, tt.phase, testLen)
		r, err := CalculateLock(in, testRate, testLock, 50)
		if err != nil {
			t.Fatal(err)
		}
		if !almostEqual(r.R, tt.amp, 5e-3*tt.amp) {
			t.Errorf("amp=%v phase=%v: R=%v", tt.amp, tt.phase, r.R)
		}
		if d := phaseDiff(r.Phase, tt.phase); d > 1e-3 {
			t.Errorf("amp=%v phase=%v: Phase=%v", tt.amp, tt.phase, r.Phase)
		}
		if !almostEqual(r.R, math.Hypot(r.X, r.Y), 1e-12) {
			t.Errorf("R=%v inconsistent with X=%v Y=%v", r.R, r.X, r.Y)
		}
		if r.SampleRate != testRate || r.LockFrequency != testLock {
			t.Errorf("descriptor fs=%v fl=%v", r.SampleRate, r.LockFrequency)
		}
	}
}

func TestLockInNoise(t *testing.T) {
	const (
		fs = 10000.0
		fl = 1000.0
		n  = 50000
	)
	in := testutil.Add(
		testutil.Tone[float64](fl, fs, 0.1, 0.4, n),
		testutil.DeterministicNoise(42, 0.5, n),
	)
	r, err := CalculateLock(in, fs, fl, 20)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(r.R, 0.1, 0.01) {
		t.Fatalf("R=%v want 0.1", r.R)
	}
	if d := phaseDiff(r.Phase, 0.4); d > 0.1 {
		t.Fatalf("Phase=%v want 0.4", r.Phase)
	}
}

func TestPhaseOffset(t *testing.T) {
	in := testutil.Tone[float64](testLock, testRate, 2, 0.9, testLen)
	r, err := CalculateLockPhase(in, testRate, testLock, 50, 0.9)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(r.R, 2, 0.01) || phaseDiff(r.Phase, 0) > 1e-3 {
		t.Fatalf("R=%v Phase=%v", r.R, r.Phase)
	}
}

func TestLockFloat32(t *testing.T) {
	in := testutil.Tone[float32](testLock, testRate, 1, 1.2, testLen)
	d, err := New32(testRate, 50, WithWindow(window.TypeKaiser40))
	if err != nil {
		t.Fatal(err)
	}
	r, err := d.Lock(in, testLock)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(float64(r.R), 1, 0.01) || phaseDiff(float64(r.Phase), 1.2) > 0.01 {
		t.Fatalf("R=%v Phase=%v", r.R, r.Phase)
	}
}

func TestLockIsRepeatable(t *testing.T) {
	in := testutil.DeterministicNoise(4, 1, 4096)
	d, err := New(testRate, 10)
	if err != nil {
		t.Fatal(err)
	}
	a, err := d.Lock(in, 300)
	if err != nil {
		t.Fatal(err)
	}
	b, err := d.Lock(in, 300)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("results differ: %+v vs %+v", a, b)
	}
}

func TestLockReusesPlans(t *testing.T) {
	in := testutil.Tone[float64](testLock, testRate, 1, 0, testLen)
	d, err := New(testRate, 50)
	if err != nil {
		t.Fatal(err)
	}
	if n := d.plans.count(testLen); n != 0 {
		t.Fatalf("idle plans before first lock=%d", n)
	}

	results, err := Collect(d.Scan(in, testLock-2, testLock+2, 1))
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 5 {
		t.Fatalf("results=%d", len(results))
	}
	if n := d.plans.count(testLen); n != 1 {
		t.Fatalf("idle plans after scan=%d want 1", n)
	}

	fresh, err := CalculateLock(in, testRate, testLock, 50)
	if err != nil {
		t.Fatal(err)
	}
	if results[2] != fresh {
		t.Fatalf("cached plan result %+v, fresh detector %+v", results[2], fresh)
	}
}

func TestInsufficientData(t *testing.T) {
	in := make([]float64, MinSamples-1)
	if _, err := CalculateLock(in, testRate, testLock, 50); !errors.Is(err, core.ErrInsufficientData) {
		t.Fatalf("err=%v want ErrInsufficientData", err)
	}
	d, err := New(testRate, 50)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.Lock(in, testLock); !errors.Is(err, core.ErrInsufficientData) {
		t.Fatalf("Lock err=%v want ErrInsufficientData", err)
	}
}

func TestInvalidConfiguration(t *testing.T) {
	if _, err := New(0, 50); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Fatalf("zero rate err=%v", err)
	}
	if _, err := New(testRate, math.Inf(1)); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Fatalf("infinite transition err=%v", err)
	}
	if _, err := New(testRate, 50, WithPhaseOffset(math.NaN())); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Fatalf("NaN phase err=%v", err)
	}
	d, err := New(testRate, 50)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.Lock(make([]float64, testLen), math.NaN()); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Fatalf("NaN lock err=%v", err)
	}
	if d.SampleRate() != testRate || d.Transition() != 50 {
		t.Fatalf("accessors fs=%v ft=%v", d.SampleRate(), d.Transition())
	}
	if d.Window() != fir.DefaultWindow {
		t.Fatalf("Window=%v", d.Window())
	}
}

func TestDoublePSD(t *testing.T) {
	samples := []float64{1, 1, 1, 1}
	x := make([]float64, 4)
	y := make([]float64, 4)
	DoublePSD(x, y, samples, 4, 1, 0)
	wantX := []float64{0, 2, 0, -2}
	wantY := []float64{2, 0, -2, 0}
	for i := range samples {
		if !almostEqual(x[i], wantX[i], 1e-12) || !almostEqual(y[i], wantY[i], 1e-12) {
			t.Fatalf("i=%d x=%v y=%v", i, x[i], y[i])
		}
	}
}
