package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/betterrest/internal/app"
	"github.com/five82/betterrest/internal/bedtime"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "betterrest: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:           "betterrest",
		Short:         "Estimate an ideal bedtime from wake time, sleep goal and coffee intake",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "override config path (optional)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "override preferences path (optional)")
	flags.StringVar(&opts.ModelPath, "model", "", "coefficient table to use instead of the built-in one")
	flags.StringVar(&opts.LogFile, "log-file", "", "log destination: a path, stderr or stdout")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level: debug|info|warn|error")

	root.AddCommand(newTUICmd(&opts))
	root.AddCommand(newCalcCmd(&opts))
	return root
}

func newTUICmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive bedtime picker",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), *opts)
		},
	}
}

type calcFlags struct {
	wake   string
	sleep  float64
	coffee int
	clock  string
}

func newCalcCmd(opts *app.Options) *cobra.Command {
	var f calcFlags

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Print the ideal bedtime once and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalc(cmd, *opts, f)
		},
	}
	cmd.Flags().StringVar(&f.wake, "wake", "", "wake-up time as HH:MM (default from config, 07:00)")
	cmd.Flags().Float64Var(&f.sleep, "sleep", 0, "desired hours of sleep, 4 to 12 in quarter hours")
	cmd.Flags().IntVar(&f.coffee, "coffee", 0, "cups of coffee per day, 1 to 19")
	cmd.Flags().StringVar(&f.clock, "clock", "", "clock format: 12h|24h (default from prefs)")
	return cmd
}

func runCalc(cmd *cobra.Command, opts app.Options, f calcFlags) error {
	env, err := app.Setup(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	in, err := env.DefaultInputs(time.Now())
	if err != nil {
		return err
	}
	if f.wake != "" {
		wake, err := bedtime.ParseWake(f.wake, time.Now())
		if err != nil {
			return err
		}
		in.Wake = wake
	}
	if cmd.Flags().Changed("sleep") {
		in.SleepGoal = f.sleep
	}
	if cmd.Flags().Changed("coffee") {
		in.Coffee = f.coffee
	}
	if err := in.Validate(); err != nil {
		return err
	}

	clock := env.Prefs.Clock
	if f.clock != "" {
		if clock, err = bedtime.ParseClockFormat(f.clock); err != nil {
			return err
		}
	}

	res, calcErr := env.Calculator.Calculate(in)
	printDisplay(cmd.OutOrStdout(), bedtime.Present(res, calcErr, clock))
	return calcErr
}

func printDisplay(w io.Writer, d bedtime.Display) {
	_, _ = fmt.Fprintln(w, d.Title)
	_, _ = fmt.Fprintln(w, d.Message)
}
