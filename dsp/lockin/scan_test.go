package lockin

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-lockin/dsp/core"
	"github.com/cwbudde/algo-lockin/internal/testutil"
)

func TestFrequencies(t *testing.T) {
	tests := []struct {
		low, high, step float64
		want            []float64
	}{
		{0, 1, 0.25, []float64{0, 0.25, 0.5, 0.75, 1}},
		{5, 5, 1, []float64{5}},
		{1, 1.95, 0.5, []float64{1, 1.5}},
		{100, 130, 10, []float64{100, 110, 120, 130}},
	}
	for _, tt := range tests {
		got, err := Frequencies(tt.low, tt.high, tt.step)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != len(tt.want) {
			t.Fatalf("Frequencies(%v,%v,%v)=%v want %v", tt.low, tt.high, tt.step, got, tt.want)
		}
		for i := range got {
			if !almostEqual(got[i], tt.want[i], 1e-12) {
				t.Fatalf("Frequencies(%v,%v,%v)=%v want %v", tt.low, tt.high, tt.step, got, tt.want)
			}
		}
	}

	bad := [][3]float64{
		{0, 1, 0},
		{0, 1, -1},
		{2, 1, 0.5},
		{0, math.Inf(1), 1},
		{0, 1, math.NaN()},
		{0, 1e9, 1e-9},
	}
	for _, b := range bad {
		if _, err := Frequencies(b[0], b[1], b[2]); !errors.Is(err, core.ErrInvalidConfiguration) {
			t.Errorf("Frequencies(%v) err=%v", b, err)
		}
	}
}

func TestScanFindsTone(t *testing.T) {
	in := testutil.Tone[float64](testLock, testRate, 1, 0.3, testLen)
	d, err := New(testRate, 50)
	if err != nil {
		t.Fatal(err)
	}

	results, err := Collect(d.Scan(in, 1000, 1048, 8))
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 7 {
		t.Fatalf("results=%d want 7", len(results))
	}
	for i, r := range results {
		if want := 1000 + 8*float64(i); !almostEqual(r.LockFrequency, want, 1e-9) {
			t.Fatalf("result %d at %v want %v", i, r.LockFrequency, want)
		}
		if r.LockFrequency == testLock {
			if !almostEqual(r.R, 1, 5e-3) {
				t.Fatalf("R at lock=%v", r.R)
			}
		} else if r.R > 1e-3 {
			t.Fatalf("R at %v Hz=%v", r.LockFrequency, r.R)
		}
	}

	freq, mag, phase := Columns(results)
	if len(freq) != 7 || len(mag) != 7 || len(phase) != 7 {
		t.Fatal("column length mismatch")
	}
	if freq[3] != testLock || mag[3] != results[3].R || phase[3] != results[3].Phase {
		t.Fatalf("columns do not follow results: %v %v %v", freq[3], mag[3], phase[3])
	}
}

func TestScanIsRestartableAndLazy(t *testing.T) {
	in := testutil.DeterministicNoise(8, 1, MinSamples)
	d, err := New(testRate, 20)
	if err != nil {
		t.Fatal(err)
	}
	seq := d.Scan(in, 100, 400, 100)

	first, err := Collect(seq)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Collect(seq)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 4 || len(second) != 4 {
		t.Fatalf("lengths %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("result %d differs between runs", i)
		}
	}

	pulled := 0
	for _, err := range seq {
		if err != nil {
			t.Fatal(err)
		}
		pulled++
		if pulled == 2 {
			break
		}
	}
	if pulled != 2 {
		t.Fatalf("pulled=%d", pulled)
	}
}

func TestScanErrors(t *testing.T) {
	d, err := New(testRate, 20)
	if err != nil {
		t.Fatal(err)
	}

	count := 0
	for _, err := range d.Scan(make([]float64, testLen), 10, 5, 1) {
		count++
		if !errors.Is(err, core.ErrInvalidConfiguration) {
			t.Fatalf("err=%v want ErrInvalidConfiguration", err)
		}
	}
	if count != 1 {
		t.Fatalf("yielded %d values for an invalid range", count)
	}

	results, err := Collect(d.Scan(make([]float64, 100), 10, 20, 1))
	if !errors.Is(err, core.ErrInsufficientData) || len(results) != 0 {
		t.Fatalf("short recording: results=%d err=%v", len(results), err)
	}
}
