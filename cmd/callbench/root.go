package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexshd/callbench"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "callbench [benchmark]",
		Short: "Measure method-call dispatch overhead",
		Long: `Times nested method calls: Foo calls Bar 20 times, Bar calls Baz 20 times,
Baz calls Quux 20 times and Quux calls the empty Qux 20 times. Each iteration
calls Foo(1, 2, 3, 4) 20 times between two timer readings.

Prints one duration per iteration, or with --take_geo_mean their geometric
mean. Options may also be set as CALLBENCH_* environment variables, in a .env
file, or in the file named by --config.`,
		Args:          benchmarkArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(cmd, v, args)
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", callbench.ErrConfiguration, err)
	})

	addFlags(cmd.Flags())
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		panic(fmt.Sprintf("callbench: binding flags: %v", err))
	}

	return cmd
}

func benchmarkArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: expected at most one benchmark name, got %d (available: %v)",
			callbench.ErrConfiguration, len(args), callbench.Names())
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}

func runBenchmark(cmd *cobra.Command, v *viper.Viper, args []string) error {
	opts := optionsFromViper(v, args)
	logger := newLogger(cmd.ErrOrStderr(), v.GetBool(flagVerbose))

	samples, err := callbench.Run(opts, logger)
	if err != nil {
		return err
	}

	if err := callbench.Report(cmd.OutOrStdout(), samples, opts.TakeGeoMean); err != nil {
		return err
	}

	if opts.ChartPath != "" {
		if err := writeChartFile(opts, samples); err != nil {
			return err
		}
		logger.Info("chart written", "path", opts.ChartPath)
	}

	if opts.MetricsPath != "" {
		m := callbench.NewMetrics(opts.Benchmark, opts.Dispatch)
		m.Observe(samples)
		if err := m.WriteTextfile(opts.MetricsPath); err != nil {
			return err
		}
		logger.Info("metrics written", "path", opts.MetricsPath)
	}

	return nil
}

func writeChartFile(opts callbench.Options, samples callbench.Samples) (err error) {
	f, err := os.Create(opts.ChartPath)
	if err != nil {
		return fmt.Errorf("creating chart: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing chart: %w", cerr)
		}
	}()

	title := fmt.Sprintf("%s (%s dispatch, %s timer)", opts.Benchmark, opts.Dispatch, opts.Timer)
	return callbench.WriteChart(f, title, samples)
}
