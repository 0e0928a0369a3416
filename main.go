package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"breathalyzer.klederson.com/internal/app"
	"breathalyzer.klederson.com/internal/config"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var opts = config.DefaultOptions()

func main() {
	rootCmd := &cobra.Command{
		Use:   "etilometro",
		Short: "Etilometro - arcade breathalyzer display for the terminal",
		Long: `Etilometro drives a novelty breathalyzer cabinet: press the button, read
the instructions, blow for five seconds and watch the needle.

Readings come from a serial sensor by default (one decimal value per line).
Without a sensor the arrow keys set the level; without the GPIO button the
space bar starts a test. This is a game, not a measurement instrument.`,
		SilenceUsage: true,
		RunE:         run,
	}

	flags := rootCmd.Flags()
	flags.StringVar((*string)(&opts.Source), "source", string(opts.Source), "Reading source: serial, ble, sim or none")
	flags.StringVar(&opts.Port, "port", opts.Port, "Serial device for the sensor")
	flags.IntVar(&opts.Baud, "baud", opts.Baud, "Serial baud rate")
	flags.StringVar(&opts.BLEName, "ble-name", opts.BLEName, "Advertised name of a BLE sensor")
	flags.StringVar(&opts.ButtonPin, "button-pin", opts.ButtonPin, "GPIO pin of the start button")
	flags.BoolVar(&opts.NoButton, "no-button", false, "Skip the GPIO button and use the space bar")
	flags.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file (discarded when empty)")
	flags.BoolVar(&opts.Debug, "debug", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	log, closeLog, err := newLogger(opts.LogFile, opts.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	model := app.New(opts, log)
	model.Start(ctx)
	defer func() {
		if err := model.Shutdown(); err != nil {
			fmt.Fprintf(os.Stderr, "cleanup: %v\n", err)
		}
	}()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	log.Info("display started", "source", opts.Source, "version", config.AppVersion)
	_, err = p.Run()
	return err
}

// newLogger builds the slog logger. The display owns the terminal, so logs
// only go to a file.
func newLogger(path string, debug bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	log := slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}))
	slog.SetDefault(log)
	return log, closeFn, nil
}
