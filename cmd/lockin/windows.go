package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-lockin/dsp/window"
)

func (a *app) newWindowsCmd() *cobra.Command {
	var (
		size int
		list bool
	)
	cmd := &cobra.Command{
		Use:   "windows [name ...]",
		Short: "Print spectral properties of the window functions",
		Long: `Print coherent gain, noise bandwidth, 3 dB bandwidth, scallop loss,
highest side lobe and ideal overlap of each named window, or of every
window when no names are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				for _, t := range window.Types() {
					fmt.Fprintln(out, t)
				}
				return nil
			}

			types := window.Types()
			if len(args) > 0 {
				types = types[:0:0]
				for _, name := range args {
					types = append(types, canonicalWindow(name, a.log))
				}
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "Window\tFamily\tGain\tNENBW\t3dB BW\tScallop dB\tSidelobe dB\tOverlap\t")
			for _, t := range types {
				w, err := window.Generate(t, size)
				if err != nil {
					return err
				}
				an := window.Analyze(w.Coeffs)
				info := window.Info(t)
				fmt.Fprintf(tw, "%s\t%s\t%.4f\t%.4f\t%.4f\t%.2f\t%.1f\t%.3f\t\n",
					displayName(t), info.Family, an.CoherentGain, an.NENBW, an.Bandwidth3dB,
					an.ScallopLossdB, an.HighestSidelobedB, info.IdealOverlap)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&size, "size", 1024, "window length in samples")
	cmd.Flags().BoolVar(&list, "list", false, "list the canonical window names")
	return cmd
}
