package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-lockin/dsp/filter/fir"
	"github.com/cwbudde/algo-lockin/flatbin"
	"github.com/cwbudde/algo-lockin/internal/logging"
)

type filterSummary struct {
	Command     string         `yaml:"command"`
	Kind        string         `yaml:"kind"`
	Window      string         `yaml:"window"`
	Transitions []float64      `yaml:"transitions"`
	Input       *recording     `yaml:"input"`
	Header      flatbin.Header `yaml:"header"`
	Output      string         `yaml:"output"`
}

func (a *app) newFilterCmd() *cobra.Command {
	var (
		transitions  []float64
		spectrumPath string
		responsePath string
	)
	cmd := &cobra.Command{
		Use:   "filter [lowpass|highpass|bandpass|bandstop|none] <input> <output>",
		Short: "Apply a windowed-sinc FFT filter",
		Long: `Filter the recording through a windowed-sinc kernel as long as the
recording, applied by multiplying spectra. Low-pass and high-pass take
one --ft, band-pass and band-stop take two. The output holds the
header followed by max(len(input), 2048) filtered samples. Without a
kind argument the configured filter.kind is used.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.cfg.Filter.Kind
			if len(args) == 3 {
				name, args = args[0], args[1:]
			}
			kind, err := canonicalKind(name)
			if err != nil {
				return err
			}
			if len(transitions) == 0 && kind.Transitions() == 1 && a.cfg.Filter.Transition > 0 {
				transitions = []float64{a.cfg.Filter.Transition}
			}
			rec, err := a.readInput(args[0])
			if err != nil {
				return err
			}

			ft := make([]sample, len(transitions))
			for i, v := range transitions {
				ft[i] = sample(v)
			}
			var opts []fir.Option
			opts = append(opts, fir.WithWindow(canonicalWindow(a.cfg.Window, a.log)))
			if spectrumPath != "" {
				opts = append(opts, fir.WithSpectrum())
			}
			if responsePath != "" {
				opts = append(opts, fir.WithResponse())
			}
			f, err := fir.NewT[sample, spectral](kind, sample(rec.SampleRate), ft, opts...)
			if err != nil {
				return err
			}
			return a.runFilter(f, rec, args[1], nil, spectrumPath, responsePath)
		},
	}
	cmd.Flags().Float64SliceVar(&transitions, "ft", nil, "transition frequencies in Hz")
	cmd.Flags().StringVar(&spectrumPath, "spectrum-out", "", "also write the filtered magnitude spectrum")
	cmd.Flags().StringVar(&responsePath, "response-out", "", "also write the kernel magnitude response")
	return cmd
}

// runFilter applies f to rec and writes the header, the optional prefix
// and the filtered samples to output.
func (a *app) runFilter(f *fir.FilterT[sample, spectral], rec *recording, output string, prefix []sample, spectrumPath, responsePath string) error {
	res, err := f.Apply(rec.samples)
	if err != nil {
		return err
	}

	winLen := len(rec.samples)
	if f.Kind().OddLength() && winLen%2 == 0 {
		winLen--
	}
	h := flatbin.Header{
		SampleRate: rec.SampleRate,
		Resolution: rec.SampleRate / float64(len(res.Samples)),
	}
	h = noiseHeader(h, winLen, float64(res.S1), float64(res.S2))

	a.log.Info("filtered", logging.Fields{
		"kind":        f.Kind().String(),
		"transitions": f.Transitions(),
		"window":      f.Window().String(),
		"fft_length":  len(res.Samples),
	})

	if err := a.writeOutput(output, h, prefix, res.Samples); err != nil {
		return err
	}
	if spectrumPath != "" {
		if err := a.writeOutput(spectrumPath, h, res.Spectrum); err != nil {
			return err
		}
	}
	if responsePath != "" {
		if err := a.writeOutput(responsePath, h, res.Response); err != nil {
			return err
		}
	}

	tr := make([]float64, 0, 2)
	for _, v := range f.Transitions() {
		tr = append(tr, float64(v))
	}
	return a.writeSummary(filterSummary{
		Command:     "filter",
		Kind:        f.Kind().String(),
		Window:      f.Window().String(),
		Transitions: tr,
		Input:       rec,
		Header:      h,
		Output:      output,
	})
}

func (a *app) newBandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "band <bandpass|bandstop> <input> <output>",
		Short: "Filter a band given by center and width",
		Long: `Filter the recording with band edges center-width/2 and
center+width/2. The payload starts with the center and width, followed by
the filtered samples.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := canonicalKind(args[0])
			if err != nil {
				return err
			}
			if kind != fir.KindBandPass && kind != fir.KindBandStop {
				return fmt.Errorf("band: kind must be bandpass or bandstop, got %s", kind)
			}
			if a.cfg.Filter.Transition <= 0 {
				return fmt.Errorf("band: --center must be > 0")
			}
			rec, err := a.readInput(args[1])
			if err != nil {
				return err
			}

			center := sample(a.cfg.Filter.Transition)
			width := sample(a.cfg.Filter.Width)
			f, err := fir.NewBandT[sample, spectral](kind, sample(rec.SampleRate), center, width,
				fir.WithWindow(canonicalWindow(a.cfg.Window, a.log)))
			if err != nil {
				return err
			}
			return a.runFilter(f, rec, args[2], []sample{center, width}, "", "")
		},
	}
	cmd.Flags().Float64("center", 0, "band center frequency in Hz")
	cmd.Flags().Float64("bw", 1, "band width in Hz")
	a.bind(cmd, map[string]string{"center": "filter.transition", "bw": "filter.width"})
	return cmd
}
