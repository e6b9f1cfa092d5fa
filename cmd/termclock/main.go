package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/san-kum/termclock/internal/config"
	"github.com/san-kum/termclock/internal/logging"
	"github.com/san-kum/termclock/internal/render"
	"github.com/san-kum/termclock/internal/terminal"
	"github.com/spf13/cobra"
)

var (
	configFile string
	interval   time.Duration
	logFile    string
	logLevel   string
	once       bool
)

var newTerminal = func() *terminal.Terminal { return terminal.New(os.Stdout) }

// main registers the flags and runs the clock. With no flags it reads or
// creates parameters.json and redraws as fast as the terminal allows until
// interrupted.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "termclock",
		Short:         "analog clock rendered as text in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runClock,
	}

	rootCmd.Flags().StringVar(&configFile, "config", config.DefaultPath, "parameters file (.json, .yaml or .yml)")
	rootCmd.Flags().DurationVar(&interval, "interval", 0, "pause between frames (0 = uncapped)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	rootCmd.Flags().BoolVar(&once, "once", false, "print a single frame and exit")

	return rootCmd
}

func runClock(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := logging.New(logFile, logLevel)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	res := config.LoadOrCreate(configFile)
	if res.Err != nil {
		logger.Warn("using default parameters", "path", configFile, "err", res.Err)
	} else {
		logger.Info("parameters loaded", "path", configFile, "source", res.Source)
	}

	renderer := render.NewRenderer(res.Parameters)
	term := newTerminal()

	if once {
		w, h := term.Size()
		return printFrame(cmd.OutOrStdout(), renderer.Frame(w, h, time.Now()), w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := render.NewLoop(renderer, term, clockwork.NewRealClock(), logger)
	if _, err := loop.Run(ctx, render.Config{Interval: interval}); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// printFrame writes a frame one row per line, for output that is piped
// rather than painted over the window.
func printFrame(w io.Writer, frame string, width int) error {
	if width <= 0 {
		return nil
	}
	runes := []rune(frame)
	for len(runes) > 0 {
		n := min(width, len(runes))
		if _, err := fmt.Fprintln(w, string(runes[:n])); err != nil {
			return err
		}
		runes = runes[n:]
	}
	return nil
}
