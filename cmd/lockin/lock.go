package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-lockin/dsp/lockin"
	"github.com/cwbudde/algo-lockin/flatbin"
	"github.com/cwbudde/algo-lockin/internal/logging"
)

type lockSummary struct {
	Command    string     `yaml:"command"`
	Window     string     `yaml:"window"`
	Input      *recording `yaml:"input"`
	Transition float64    `yaml:"transition"`
	Frequency  float64    `yaml:"frequency"`
	X          float64    `yaml:"x"`
	Y          float64    `yaml:"y"`
	R          float64    `yaml:"r"`
	Phase      float64    `yaml:"phase"`
}

// calibrationFactor is the multiple of fs/N below which the low-pass
// transition no longer dominates the kernel DC gain.
const calibrationFactor = 4

func (a *app) checkTransition(ft, fs float64, n int) {
	if limit := calibrationFactor * fs / float64(n); ft < limit {
		a.log.Warn("transition below calibration limit, amplitudes are scaled by the kernel DC gain",
			logging.Fields{"ft": ft, "limit": limit})
	}
}

func (a *app) newDetector(fs, ft, phase float64) (*lockin.DetectorT[sample, spectral], error) {
	return lockin.NewT[sample, spectral](sample(fs), sample(ft),
		lockin.WithWindow(canonicalWindow(a.cfg.Window, a.log)),
		lockin.WithPhaseOffset(phase))
}

func (a *app) newLockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock <input> [output]",
		Short: "Measure one frequency with the dual-phase lock-in detector",
		Long: `Multiply the recording by sine and cosine references at --freq,
low-pass both products with --ft and average them. Prints X, Y, R and
phase; with an output path writes the header followed by [freq, R, phase],
the layout of a one-point scan. X and Y go to the summary only.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Lock.Frequency <= 0 {
				return fmt.Errorf("lock: --freq must be > 0")
			}
			rec, err := a.readInput(args[0])
			if err != nil {
				return err
			}
			a.checkTransition(a.cfg.Lock.Transition, rec.SampleRate, len(rec.samples))

			d, err := a.newDetector(rec.SampleRate, a.cfg.Lock.Transition, a.cfg.Lock.PhaseOffset)
			if err != nil {
				return err
			}
			r, err := d.Lock(rec.samples, sample(a.cfg.Lock.Frequency))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "f=%g Hz X=%g Y=%g R=%g phase=%g rad (%.3f deg)\n",
				r.LockFrequency, r.X, r.Y, r.R, r.Phase, float64(r.Phase)*180/math.Pi)

			if len(args) == 2 {
				h := flatbin.Header{SampleRate: rec.SampleRate, Resolution: rec.SampleRate / float64(len(rec.samples))}
				freq, mag, phase := lockin.Columns([]lockin.Result[sample]{r})
				if err := a.writeOutput(args[1], h, freq, mag, phase); err != nil {
					return err
				}
			}
			return a.writeSummary(lockSummary{
				Command:    "lock",
				Window:     d.Window().String(),
				Input:      rec,
				Transition: a.cfg.Lock.Transition,
				Frequency:  float64(r.LockFrequency),
				X:          float64(r.X),
				Y:          float64(r.Y),
				R:          float64(r.R),
				Phase:      float64(r.Phase),
			})
		},
	}
	cmd.Flags().Float64("freq", 0, "lock frequency in Hz")
	cmd.Flags().Float64("ft", 0.1, "low-pass transition frequency in Hz")
	cmd.Flags().Float64("phase", 0, "reference phase offset in radians")
	a.bind(cmd, map[string]string{
		"freq":  "lock.frequency",
		"ft":    "lock.transition",
		"phase": "lock.phase_offset",
	})
	return cmd
}
