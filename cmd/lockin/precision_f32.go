//go:build float32

package main

type (
	sample   = float32
	spectral = complex64
)
