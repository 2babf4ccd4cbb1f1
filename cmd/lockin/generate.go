package main

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-lockin/dsp/core"
	"github.com/cwbudde/algo-lockin/dsp/signal"
	"github.com/cwbudde/algo-lockin/flatbin"
	"github.com/cwbudde/algo-lockin/internal/logging"
	timestats "github.com/cwbudde/algo-lockin/stats/time"
)

type generateSummary struct {
	Command    string            `yaml:"command"`
	Tones      []signal.Tone     `yaml:"tones"`
	SampleRate float64           `yaml:"sample_rate"`
	LSB        float64           `yaml:"lsb"`
	Noise      float64           `yaml:"noise"`
	Stats      timestats.Summary `yaml:"stats"`
	Output     string            `yaml:"output"`
}

func (a *app) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <output>",
		Short: "Write the reference two-tone test recording",
		Long: `Generate a 2 Vrms tone at 234.32432 Hz plus a 0.5 mVrms tone near
2132 Hz, optionally add white noise, quantize to --lsb and write the
samples without header.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gc := a.cfg.Generate
			g := signal.NewGenerator([]core.ProcessorOption{core.WithSampleRate(gc.SampleRate)},
				signal.WithSeed(gc.Seed))

			x, err := g.Tones(signal.ReferenceTones, gc.Samples)
			if err != nil {
				return err
			}
			if gc.Noise > 0 {
				noise, err := g.WhiteNoise(gc.Noise, gc.Samples)
				if err != nil {
					return err
				}
				for i := range x {
					x[i] += noise[i]
				}
			}
			signal.Quantize(x, gc.LSB)

			out := core.FromFloat64[sample](x)
			if err := flatbin.WriteFile(args[0], nil, flatbin.Header{}, out); err != nil {
				return err
			}
			stats := timestats.Calculate(out)
			a.log.Info("generated recording", logging.Fields{
				"path":    args[0],
				"samples": len(out),
				"rms":     stats.RMS,
			})
			return a.writeSummary(generateSummary{
				Command:    "generate",
				Tones:      signal.ReferenceTones,
				SampleRate: g.Config().SampleRate,
				LSB:        gc.LSB,
				Noise:      gc.Noise,
				Stats:      stats,
				Output:     args[0],
			})
		},
	}
	cmd.Flags().Int("samples", 1000000, "number of samples")
	cmd.Flags().Float64("rate", 10000, "sample rate in Hz")
	cmd.Flags().Float64("lsb", 1e-3, "quantization step in volts, 0 disables it")
	cmd.Flags().Float64("noise", 0, "white noise amplitude in volts")
	cmd.Flags().Int64("seed", 1, "noise seed")
	a.bind(cmd, map[string]string{
		"samples": "generate.samples",
		"rate":    "generate.sample_rate",
		"lsb":     "generate.lsb",
		"noise":   "generate.noise",
		"seed":    "generate.seed",
	})
	return cmd
}
