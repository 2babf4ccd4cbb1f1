// Command lockin runs the oscilloscope analysis engine on flat binary
// recordings.
//
// Usage:
//
//	lockin [global flags] <command> [flags] args...
//
// Examples:
//
//	lockin generate data.bin
//	lockin spectrum --resolution 3 data.bin spectrum.bin
//	lockin filter lowpass --ft 1000 data.bin filtered.bin
//	lockin band bandpass --center 234.3 --bw 1 data.bin band.bin
//	lockin lock --freq 234.32432 data.bin
//	lockin scan --low 200 --high 260 --step 0.5 data.bin scan.bin
//	lockin windows --size 4096 hanning kaiser35
//
// Samples are float64 unless built with -tags float32.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
