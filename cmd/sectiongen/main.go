// Command sectiongen generates accessors for sectiongen records.
//
//	sectiongen [flags] [packages]
//
// Without packages, the package in the working directory is processed.
// Settings are read from sectiongen.yaml in the working directory, and flags
// override them.
package main

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	sectiongeninternal "github.com/sublee/sectiongen/internal/sectiongen"
)

var Version = "dev"

func init() {
	sectiongeninternal.Version = Version
}

// errStale is returned by --check when generated files are out of date.
var errStale = errors.New("generated files are out of date")

type options struct {
	cfg     sectiongeninternal.Config
	diff    bool
	check   bool
	verbose bool
}

func main() {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		message := err.Error()
		if useColor(cmd) {
			message = colorize(message)
		}
		fmt.Fprintln(os.Stderr, message)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:     "sectiongen [flags] [packages]",
		Short:   "Generate write-once, read-once accessors for section records",
		Version: Version,
		Args:    cobra.ArbitraryArgs,

		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			if err := opts.load(cmd, wd); err != nil {
				return err
			}

			log, err := newLogger(opts.verbose)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			defer zap.ReplaceGlobals(log)()

			if len(args) == 0 {
				args = []string{"."}
			}
			return run(cmd, wd, args, opts)
		},
	}

	opts.register(cmd)
	return cmd
}

// register defines the flags of cmd bound to opts.
func (opts *options) register(cmd *cobra.Command) {
	opts.cfg = sectiongeninternal.DefaultConfig()

	flags := cmd.Flags()
	flags.StringVarP(&opts.cfg.Output, "output", "o", opts.cfg.Output, "output file name")
	flags.StringSliceVarP(&opts.cfg.Tags, "tags", "b", nil, "comma-separated build tags")
	flags.BoolVarP(&opts.cfg.Tests, "tests", "t", false, "include tests")
	flags.StringVarP(&opts.cfg.Color, "color", "c", opts.cfg.Color, "colorize (auto|always|never)")
	flags.BoolVarP(&opts.diff, "diff", "d", false, "print diffs instead of writing files")
	flags.BoolVar(&opts.check, "check", false, "fail if generated files are out of date")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print debug logs")
}

// load reads the configuration file under the flags. Flags given on the
// command line take precedence.
func (opts *options) load(cmd *cobra.Command, wd string) error {
	cfg, err := sectiongeninternal.LoadConfig(wd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = opts.cfg.Output
	}
	if flags.Changed("tags") {
		cfg.Tags = opts.cfg.Tags
	}
	if flags.Changed("tests") {
		cfg.Tests = opts.cfg.Tests
	}
	if flags.Changed("color") {
		cfg.Color = opts.cfg.Color
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts.cfg = cfg
	return nil
}

func run(cmd *cobra.Command, wd string, patterns []string, opts options) error {
	cfg := opts.cfg
	outs, err := sectiongeninternal.Main(cmd.Context(), wd, os.Environ(), cfg.BuildTags(), cfg.Tests, cfg.Output, patterns)
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	color := useColor(cmd)

	var stale bool
	for _, out := range slices.Sorted(maps.Keys(outs)) {
		code := outs[out]

		if opts.diff || opts.check {
			old, err := os.ReadFile(out)
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			diff := sectiongeninternal.Diff(out, old, code)
			if diff == "" {
				continue
			}
			stale = true

			if color {
				diff = colorizeDiff(diff)
			}
			if opts.diff {
				fmt.Fprint(stdout, diff)
			} else {
				fmt.Fprintln(stdout, "Stale:", out)
			}
			continue
		}

		if err := os.WriteFile(out, code, 0o644); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "Generated:", out)
	}

	if opts.check && stale {
		return errStale
	}
	return nil
}

// newLogger builds the logger for the tool. Only warnings are printed unless
// verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level.SetLevel(zap.DebugLevel)
	}
	return cfg.Build()
}
