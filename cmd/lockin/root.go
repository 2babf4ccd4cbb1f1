package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-lockin/internal/config"
	"github.com/cwbudde/algo-lockin/internal/logging"
)

// app carries state shared by every command of one invocation.
type app struct {
	v          *viper.Viper
	cfg        *config.Config
	log        logging.Logger
	configFile string
	summary    string
	// bindings maps command name to its flag to config key bindings.
	bindings map[string]map[string]string
}

var rootBindings = map[string]string{
	"log-level":  "log_level",
	"log-format": "log_format",
	"window":     "window",
	"header":     "header",
	"width":      "input.width",
	"fs":         "input.sample_rate",
	"crop":       "input.crop",
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{
		v:        config.New(),
		log:      logging.Nop(),
		bindings: make(map[string]map[string]string),
	}

	root := &cobra.Command{
		Use:   "lockin",
		Short: "Spectral analysis and lock-in detection of oscilloscope recordings",
		Long: `lockin reads flat little-endian sample files and computes averaged
magnitude spectra, windowed-sinc FFT filters and dual-phase lock-in
amplitudes. Results are written as an optional header of scalars
followed by the payload, in the precision the tool was built with.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default searches ./lockin.yaml, $HOME/.lockin, /etc/lockin)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "text", "log format (text, json)")
	pf.String("window", "HAMMING", "window function name")
	pf.String("header", "fs,fr,S1,S2,NENBW,ENBW", "header fields written before each payload")
	pf.Int("width", 8, "input element width in bytes (4 or 8)")
	pf.Float64("fs", 10000, "input sample rate in Hz")
	pf.Int("crop", 1, "average groups of adjacent input samples")
	pf.StringVar(&a.summary, "summary", "", "write a YAML run summary to this path")

	root.AddCommand(
		a.newFilterCmd(),
		a.newBandCmd(),
		a.newSpectrumCmd(),
		a.newLockCmd(),
		a.newScanCmd(),
		a.newGenerateCmd(),
		a.newWindowsCmd(),
	)
	return root
}

// bind registers flag to config key bindings applied before cmd runs.
func (a *app) bind(cmd *cobra.Command, keys map[string]string) {
	a.bindings[cmd.Name()] = keys
}

func (a *app) initialize(cmd *cobra.Command) error {
	if err := config.ReadFile(a.v, a.configFile); err != nil {
		return err
	}
	if err := config.BindFlags(a.v, cmd.Flags(), rootBindings); err != nil {
		return err
	}
	if keys, ok := a.bindings[cmd.Name()]; ok {
		if err := config.BindFlags(a.v, cmd.Flags(), keys); err != nil {
			return err
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(cfg.LogFormat)
	if err != nil {
		return err
	}
	a.log = logging.New(os.Stderr, level, format).WithFields(logging.Fields{"command": cmd.Name()})
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("using config file", logging.Fields{"path": used})
	}
	return nil
}

func (a *app) writeSummary(v any) error {
	if a.summary == "" {
		return nil
	}
	if err := writeSummaryFile(a.summary, v); err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	return nil
}
