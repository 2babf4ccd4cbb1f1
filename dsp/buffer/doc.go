// Package buffer provides reusable sample buffers for the per-call scratch
// arrays of the analysis operations. A buffer taken from a Pool belongs to
// one call until it is put back.
package buffer
