package main

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-lockin/dsp/lockin"
	"github.com/cwbudde/algo-lockin/dsp/spectrum"
	"github.com/cwbudde/algo-lockin/flatbin"
	"github.com/cwbudde/algo-lockin/internal/logging"
	"github.com/cwbudde/algo-lockin/stats/frequency"
)

type scanSummary struct {
	Command    string         `yaml:"command"`
	Window     string         `yaml:"window"`
	Input      *recording     `yaml:"input"`
	Transition float64        `yaml:"transition"`
	Low        float64        `yaml:"low"`
	High       float64        `yaml:"high"`
	Step       float64        `yaml:"step"`
	Points     int            `yaml:"points"`
	Unwrapped  bool           `yaml:"unwrapped"`
	PeakHz     float64        `yaml:"peak_hz"`
	PeakR      float64        `yaml:"peak_r"`
	Header     flatbin.Header `yaml:"header"`
	Output     string         `yaml:"output"`
}

// scanRange fills zero bounds from the recording: low fs/N, high the
// Nyquist frequency and a step of 100 bins of the Nyquist resolution times
// the crop group.
func scanRange(low, high, step, fs float64, n, crop int) (float64, float64, float64) {
	nyquist := fs / 2
	if low == 0 {
		low = fs / float64(n)
	}
	if high == 0 {
		high = nyquist
	}
	if step == 0 {
		step = nyquist / float64(n) * 100 * float64(crop)
	}
	return low, high, step
}

func (a *app) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <input> <output>",
		Short: "Sweep the lock-in detector over a frequency range",
		Long: `Evaluate the lock-in detector at low, low+step, ... up to high. The
output holds the header followed by the lock frequencies, the amplitudes
R and the phases, each as one contiguous array. --unwrap removes 2*pi
jumps between neighbouring phases.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.readInput(args[0])
			if err != nil {
				return err
			}
			n := len(rec.samples)
			low, high, step := scanRange(a.cfg.Scan.Low, a.cfg.Scan.High, a.cfg.Scan.Step,
				rec.SampleRate, n, a.cfg.Input.Crop)
			a.checkTransition(a.cfg.Scan.Transition, rec.SampleRate, n)

			d, err := a.newDetector(rec.SampleRate, a.cfg.Scan.Transition, 0)
			if err != nil {
				return err
			}
			a.log.Info("scanning", logging.Fields{"low": low, "high": high, "step": step})

			results, err := lockin.Collect(d.Scan(rec.samples, sample(low), sample(high), sample(step)))
			if err != nil {
				return err
			}
			freq, mag, phase := lockin.Columns(results)
			if a.cfg.Scan.Unwrap {
				phase = spectrum.UnwrapPhase(phase)
			}
			peak := frequency.Peak(mag, step)
			peakHz := low + peak.Frequency
			a.log.Info("scan complete", logging.Fields{"points": len(results), "peak_hz": peakHz, "peak_r": peak.Magnitude})

			h := flatbin.Header{SampleRate: rec.SampleRate, Resolution: step}
			if err := a.writeOutput(args[1], h, freq, mag, phase); err != nil {
				return err
			}
			return a.writeSummary(scanSummary{
				Command:    "scan",
				Window:     d.Window().String(),
				Input:      rec,
				Transition: a.cfg.Scan.Transition,
				Low:        low,
				High:       high,
				Step:       step,
				Points:     len(results),
				Unwrapped:  a.cfg.Scan.Unwrap,
				PeakHz:     peakHz,
				PeakR:      peak.Magnitude,
				Header:     h,
				Output:     args[1],
			})
		},
	}
	cmd.Flags().Float64("low", 0, "first lock frequency in Hz (default fs/N)")
	cmd.Flags().Float64("high", 0, "last lock frequency in Hz (default fs/2)")
	cmd.Flags().Float64("step", 0, "frequency step in Hz (default 100*crop*fs/(2N))")
	cmd.Flags().Float64("ft", 0.1, "low-pass transition frequency in Hz")
	cmd.Flags().Bool("unwrap", false, "unwrap the phase column")
	a.bind(cmd, map[string]string{
		"low":    "scan.low",
		"high":   "scan.high",
		"step":   "scan.step",
		"ft":     "scan.transition",
		"unwrap": "scan.unwrap",
	})
	return cmd
}
