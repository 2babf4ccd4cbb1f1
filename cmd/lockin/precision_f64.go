//go:build !float32

package main

type (
	sample   = float64
	spectral = complex128
)
