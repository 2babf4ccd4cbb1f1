package window

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-lockin/dsp/core"
)

var errMismatchedLength = errors.New("window: samples and coefficients must have same length")

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window: %w: size must be > 0: %d", core.ErrInvalidConfiguration, size)
	}
	return nil
}
