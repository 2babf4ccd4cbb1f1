// Package fir implements windowed-sinc filters applied by frequency-domain
// convolution.
//
// A filter is described once by its [Kind], transition frequencies, sample
// rate and window type. [FilterT.Apply] builds the ideal sinc kernel for the
// input length, tapers it with the window, and multiplies the input spectrum
// by the kernel's magnitude response. The kernel phase is discarded, so the
// filter is zero-phase and does not delay the signal.
//
// The transform length is at least [MinFFTLength]; shorter inputs are
// zero-padded and the result is then longer than the input.
package fir
