// Package time summarizes recordings in the time domain.
//
//nolint:revive
package time
