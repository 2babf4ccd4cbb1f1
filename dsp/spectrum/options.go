package spectrum

import "github.com/cwbudde/algo-lockin/dsp/window"

// DefaultWindow is the segment window used unless WithWindow is given.
const DefaultWindow = window.TypeHann

// Option configures a segmented estimate.
type Option func(*config)

type config struct {
	resolution   float64
	window       window.Type
	overlap      float64
	idealOverlap bool
}

func defaultConfig() config {
	return config{window: DefaultWindow}
}

// WithResolution requests a frequency resolution in Hz. The default is
// ceil(fs/len(samples)).
func WithResolution(hz float64) Option {
	return func(c *config) {
		c.resolution = hz
	}
}

// WithWindow selects the segment window.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
	}
}

// WithOverlap sets the fraction in [0, 1) by which consecutive segments
// overlap.
func WithOverlap(fraction float64) Option {
	return func(c *config) {
		c.overlap = fraction
		c.idealOverlap = false
	}
}

// WithIdealOverlap overlaps segments by window.IdealOverlap of the selected
// window.
func WithIdealOverlap() Option {
	return func(c *config) {
		c.idealOverlap = true
	}
}
