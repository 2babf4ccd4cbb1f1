package signal

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-lockin/dsp/core"
)

func TestCrop(t *testing.T) {
	in := []float64{1, 3, 5, 7, 9, 11, 13}
	out, fs, err := Crop(in, 1000, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{2, 6, 10}
	if len(out) != len(want) {
		t.Fatalf("out=%v want %v", out, want)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out=%v want %v", out, want)
		}
	}
	if fs != 500 {
		t.Fatalf("fs=%v want 500", fs)
	}
}

func TestCropIdentity(t *testing.T) {
	in := []float32{1, 2}
	out, fs, err := Crop(in, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	out[0] = 9
	if in[0] != 1 || fs != 10 || len(out) != 2 {
		t.Fatalf("identity crop: in=%v out=%v fs=%v", in, out, fs)
	}
}

func TestCropErrors(t *testing.T) {
	if _, _, err := Crop([]float64{1, 2}, 10, 0); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Fatalf("group 0 err=%v", err)
	}
	if _, _, err := Crop([]float64{1, 2}, 10, 3); !errors.Is(err, core.ErrInsufficientData) {
		t.Fatalf("short err=%v", err)
	}
}
