// Command avb-remote is an interactive console for driving audio/video
// devices through remotes.
//
// Every device from the roster is wrapped in an advanced remote. Commands
// toggle power, step the volume, and mute; each operation can be captured
// to a CBOR trace file for later analysis with avb-trace.
//
// Usage:
//
//	avb-remote [flags]
//
// Flags:
//
//	-roster string     Device roster file (YAML); built-in tv + radio pair if empty
//	-trace string      Append operation trace events to this file
//	-log-level string  Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Drive the built-in device pair
//	avb-remote
//
//	# Load devices from a roster and capture a trace
//	avb-remote -roster devices.yaml -trace session.alog
//
//	# Mirror trace events to the console
//	avb-remote -trace session.alog -log-level debug
package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/avbridge/avbridge-go/cmd/avb-remote/interactive"
	"github.com/avbridge/avbridge-go/pkg/device"
	"github.com/avbridge/avbridge-go/pkg/roster"
	"github.com/avbridge/avbridge-go/pkg/trace"
	"github.com/lmittmann/tint"
)

// Config holds the console configuration.
type Config struct {
	RosterFile string
	TraceFile  string
	LogLevel   string
}

var config Config

func init() {
	flag.StringVar(&config.RosterFile, "roster", "", "Device roster file (YAML)")
	flag.StringVar(&config.TraceFile, "trace", "", "Append operation trace events to this file")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func main() {
	flag.Parse()

	logger := newLogger(os.Stderr, config.LogLevel)

	entries, err := loadEntries()
	if err != nil {
		logger.Error("failed to load roster", "err", err)
		os.Exit(1)
	}

	sh, err := interactive.New(entries)
	if err != nil {
		logger.Error("failed to create shell", "err", err)
		os.Exit(1)
	}

	// Redirect log output through readline to avoid interfering with input
	logger = newLogger(sh.Stdout(), config.LogLevel)
	slog.SetDefault(logger)

	var traceLoggers []trace.Logger
	if config.TraceFile != "" {
		fl, err := trace.NewFileLogger(config.TraceFile)
		if err != nil {
			logger.Error("failed to open trace file", "err", err)
			os.Exit(1)
		}
		defer fl.Close()
		traceLoggers = append(traceLoggers, fl)
		logger.Info("tracing operations", "file", config.TraceFile)
	}
	if strings.EqualFold(config.LogLevel, "debug") {
		traceLoggers = append(traceLoggers, trace.NewSlogAdapter(logger))
	}
	if len(traceLoggers) > 0 {
		sh.SetTraceLogger(trace.NewMultiLogger(traceLoggers...))
	}

	logger.Info("remote console ready", "devices", len(entries))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go sh.Run(ctx, cancel)

	// Wait for shutdown signal or context cancellation
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received signal", "signal", sig.String())
	case <-ctx.Done():
		// Context was cancelled by the quit command
	}

	logger.Info("goodbye")
}

// loadEntries builds the device set from the roster file, or the built-in
// pair when no roster is given.
func loadEntries() ([]roster.Entry, error) {
	if config.RosterFile == "" {
		return []roster.Entry{
			{Name: "tv", Device: device.NewTV()},
			{Name: "radio", Device: device.NewRadio()},
		}, nil
	}

	r, err := roster.Load(config.RosterFile)
	if err != nil {
		return nil, err
	}
	return r.Build()
}

// newLogger creates a tint-backed slog logger writing to w.
func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      parseLogLevel(level),
		TimeFormat: time.DateTime,
	}))
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
