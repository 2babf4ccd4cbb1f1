// Package frequency locates and characterizes peaks in averaged magnitude
// spectra whose bin k lies at k times the frequency resolution.
package frequency
