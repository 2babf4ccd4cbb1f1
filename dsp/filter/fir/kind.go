package fir

import (
	"fmt"

	"github.com/cwbudde/algo-lockin/dsp/core"
)

// Kind selects the ideal response of a filter.
type Kind int

const (
	// KindNone passes the input through the transform round trip unchanged.
	KindNone Kind = iota
	KindLowPass
	KindHighPass
	KindBandPass
	KindBandStop
)

var kindNames = [...]string{"none", "lowpass", "highpass", "bandpass", "bandstop"}

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Transitions returns the number of transition frequencies k expects.
func (k Kind) Transitions() int {
	switch k {
	case KindLowPass, KindHighPass:
		return 1
	case KindBandPass, KindBandStop:
		return 2
	default:
		return 0
	}
}

// OddLength reports whether kernels of kind k must have odd length.
func (k Kind) OddLength() bool {
	return k == KindHighPass || k == KindBandPass || k == KindBandStop
}

func (k Kind) valid() bool {
	return k >= KindNone && int(k) < len(kindNames)
}

// ParseKind resolves a lowercase kind name such as "bandpass".
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return KindNone, fmt.Errorf("fir: %w: unknown filter kind %q", core.ErrInvalidConfiguration, name)
}
