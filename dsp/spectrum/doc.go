// Package spectrum estimates averaged magnitude spectra of recordings.
//
// [SegmentedT] splits a recording into overlapping segments of
// floor(fs/resolution) samples, tapers each with a window, and averages the
// magnitudes of their discrete Fourier transforms (Welch's method on
// magnitudes). The reported resolution is always fs divided by the integer
// segment length, which can differ from the requested one.
package spectrum
