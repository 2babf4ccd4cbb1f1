// Package core holds the numeric conventions shared by the DSP packages:
// the precision constraints, the sentinel errors, averaging and small buffer
// helpers.
package core
