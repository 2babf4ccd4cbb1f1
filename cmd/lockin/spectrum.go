package main

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-lockin/dsp/spectrum"
	"github.com/cwbudde/algo-lockin/flatbin"
	"github.com/cwbudde/algo-lockin/internal/logging"
	"github.com/cwbudde/algo-lockin/stats/frequency"
	timestats "github.com/cwbudde/algo-lockin/stats/time"
)

type spectrumSummary struct {
	Command       string             `yaml:"command"`
	Window        string             `yaml:"window"`
	Input         *recording         `yaml:"input"`
	Header        flatbin.Header     `yaml:"header"`
	Segments      int                `yaml:"segments"`
	SegmentLength int                `yaml:"segment_length"`
	Overlap       float64            `yaml:"overlap"`
	Peak          frequency.PeakInfo `yaml:"peak"`
	Centroid      float64            `yaml:"centroid"`
	Output        string             `yaml:"output"`
}

func (a *app) newSpectrumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spectrum <input> <output>",
		Short: "Estimate the averaged magnitude spectrum",
		Long: `Cut the recording into windowed, overlapping segments of
fs/resolution samples and average their magnitude spectra. A negative
--overlap selects the window's ideal overlap. The output holds the
header followed by N/2+1 magnitudes at the actual resolution fs/N.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.readInput(args[0])
			if err != nil {
				return err
			}
			samples := rec.samples
			if a.cfg.Spectrum.RemoveDC {
				dc := timestats.RemoveDC(samples)
				a.log.Debug("removed DC", logging.Fields{"dc": dc})
			}

			wt := canonicalWindow(a.cfg.Window, a.log)
			opts := []spectrum.Option{
				spectrum.WithWindow(wt),
				spectrum.WithResolution(a.cfg.Spectrum.Resolution),
			}
			if a.cfg.Spectrum.Overlap < 0 {
				opts = append(opts, spectrum.WithIdealOverlap())
			} else {
				opts = append(opts, spectrum.WithOverlap(a.cfg.Spectrum.Overlap))
			}

			res, err := spectrum.EstimateT[sample, spectral](samples, sample(rec.SampleRate), opts...)
			if err != nil {
				return err
			}
			fr := float64(res.Resolution)
			h := flatbin.Header{
				SampleRate: rec.SampleRate,
				Resolution: fr,
				S1:         float64(res.S1),
				S2:         float64(res.S2),
				NENBW:      float64(res.NENBW),
				ENBW:       float64(res.ENBW),
			}
			peak := frequency.Peak(res.Spectrum, fr)
			a.log.Info("estimated spectrum", logging.Fields{
				"resolution":     fr,
				"segments":       res.Segments,
				"segment_length": res.SegmentLength,
				"overlap":        float64(res.Overlap),
				"nenbw":          h.NENBW,
				"peak_hz":        peak.Refined,
				"peak":           peak.Magnitude,
			})

			if err := a.writeOutput(args[1], h, res.Spectrum); err != nil {
				return err
			}
			return a.writeSummary(spectrumSummary{
				Command:       "spectrum",
				Window:        wt.String(),
				Input:         rec,
				Header:        h,
				Segments:      res.Segments,
				SegmentLength: res.SegmentLength,
				Overlap:       float64(res.Overlap),
				Peak:          peak,
				Centroid:      frequency.Centroid(res.Spectrum, fr),
				Output:        args[1],
			})
		},
	}
	cmd.Flags().Float64("resolution", 0, "requested frequency resolution in Hz (default ceil(fs/len))")
	cmd.Flags().Float64("overlap", -1, "segment overlap fraction, negative for the window's ideal overlap")
	cmd.Flags().Bool("remove-dc", true, "subtract the mean before estimating")
	a.bind(cmd, map[string]string{
		"resolution": "spectrum.resolution",
		"overlap":    "spectrum.overlap",
		"remove-dc":  "spectrum.remove_dc",
	})
	return cmd
}
