package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/alexshd/callbench"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "CALLBENCH"

// Flag names double as viper keys.
const (
	flagConfig      = "config"
	flagVerbose     = "verbose"
	flagNumRuns     = "num_runs"
	flagTimer       = "timer"
	flagTakeGeoMean = "take_geo_mean"
	flagDispatch    = "dispatch"
	flagWarmup      = "warmup"
	flagChart       = "chart"
	flagMetricsFile = "metrics-file"
)

func addFlags(flags *pflag.FlagSet) {
	d := callbench.DefaultOptions()

	flags.String(flagConfig, "", "config file (YAML)")
	flags.BoolP(flagVerbose, "v", false, "Enable debug logging")
	flags.IntP(flagNumRuns, "n", d.NumRuns, "Number of measured iterations")
	flags.String(flagTimer, d.Timer,
		fmt.Sprintf("Timing source (%s)", strings.Join(callbench.TimerNames(), ", ")))
	flags.Bool(flagTakeGeoMean, d.TakeGeoMean, "Print the geometric mean instead of every iteration")
	flags.String(flagDispatch, d.Dispatch,
		fmt.Sprintf("Dispatch variant (%s)", strings.Join(callbench.DispatchNames(), ", ")))
	flags.Int(flagWarmup, d.Warmup, "Unrecorded priming iterations before measurement")
	flags.String(flagChart, "", "Write an HTML chart of the samples to this path")
	flags.String(flagMetricsFile, "", "Write Prometheus textfile metrics to this path")
}

// loadConfig layers .env, environment and an optional config file under the
// flags already bound to v.
func loadConfig(v *viper.Viper) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: loading .env: %v", callbench.ErrConfiguration, err)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if cfgFile := v.GetString(flagConfig); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("%w: reading config %s: %v", callbench.ErrConfiguration, cfgFile, err)
		}
	}
	return nil
}

// optionsFromViper resolves the run options once. A positional argument
// selects the benchmark.
func optionsFromViper(v *viper.Viper, args []string) callbench.Options {
	opts := callbench.DefaultOptions()
	if len(args) > 0 {
		opts.Benchmark = args[0]
	}

	opts.NumRuns = v.GetInt(flagNumRuns)
	opts.Timer = v.GetString(flagTimer)
	opts.TakeGeoMean = v.GetBool(flagTakeGeoMean)
	opts.Dispatch = v.GetString(flagDispatch)
	opts.Warmup = v.GetInt(flagWarmup)
	opts.ChartPath = v.GetString(flagChart)
	opts.MetricsPath = v.GetString(flagMetricsFile)
	return opts
}
