package fir

import "github.com/cwbudde/algo-lockin/dsp/window"

// DefaultWindow is the taper applied to kernels unless WithWindow is given.
const DefaultWindow = window.TypeHamming

// Option configures a filter.
type Option func(*config)

type config struct {
	window   window.Type
	response bool
	spectrum bool
}

func defaultConfig() config {
	return config{window: DefaultWindow}
}

// WithWindow selects the window applied to the sinc kernel.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
	}
}

// WithResponse makes Apply report the kernel magnitude response.
func WithResponse() Option {
	return func(c *config) {
		c.response = true
	}
}

// WithSpectrum makes Apply report the scaled magnitude of the filtered
// spectrum.
func WithSpectrum() Option {
	return func(c *config) {
		c.spectrum = true
	}
}
