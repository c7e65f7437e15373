// Command avb-demo runs a scripted walkthrough of the remote-control bridge.
//
// It pairs a basic remote with the first roster device and an advanced remote
// with the last, drives the canonical control sequence on each, and narrates
// every step. With -trace the operations are also captured to a CBOR trace
// file readable by avb-trace.
//
// Usage:
//
//	avb-demo [flags]
//
// Flags:
//
//	-roster string     Device roster file (YAML); built-in tv + radio pair if empty
//	-trace string      Append operation trace events to this file
//	-log-level string  Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Run the walkthrough on the built-in device pair
//	avb-demo
//
//	# Capture a trace and inspect it afterwards
//	avb-demo -trace demo.alog
//	avb-trace view demo.alog
package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/avbridge/avbridge-go/pkg/device"
	"github.com/avbridge/avbridge-go/pkg/remote"
	"github.com/avbridge/avbridge-go/pkg/roster"
	"github.com/avbridge/avbridge-go/pkg/trace"
	"github.com/lmittmann/tint"
)

// Config holds the demo configuration.
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

	logger := newLogger(os.Stdout, config.LogLevel)

	entries, err := loadEntries()
	if err != nil {
		logger.Error("failed to load roster", "err", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		logger.Error("roster contains no devices")
		os.Exit(1)
	}

	var traceLoggers []trace.Logger
	if config.TraceFile != "" {
		fl, err := trace.NewFileLogger(config.TraceFile)
		if err != nil {
			logger.Error("failed to open trace file", "err", err)
			os.Exit(1)
		}
		defer fl.Close()
		traceLoggers = append(traceLoggers, fl)
	}
	if strings.EqualFold(config.LogLevel, "debug") {
		traceLoggers = append(traceLoggers, trace.NewSlogAdapter(logger))
	}

	var traceLogger trace.Logger
	if len(traceLoggers) > 0 {
		traceLogger = trace.NewMultiLogger(traceLoggers...)
	}

	first := entries[0]
	last := entries[len(entries)-1]

	runBasic(logger, first.Name, first.Device, traceLogger)
	runAdvanced(logger, last.Name, last.Device, traceLogger)

	if config.TraceFile != "" {
		logger.Info("trace written", "file", config.TraceFile)
	}
}

// runBasic drives dev through the basic remote sequence.
func runBasic(logger *slog.Logger, name string, dev device.Device, tl trace.Logger) {
	r := remote.New(dev)
	if tl != nil {
		r.SetTraceLogger(tl)
	}
	logger.Info("basic remote paired", "device", name, "session", r.SessionID())

	r.TogglePower()
	logger.Info("toggled power", "device", name, "power", dev.IsEnabled(), "volume", dev.Volume())

	r.VolumeUp()
	r.VolumeUp()
	logger.Info("volume up twice", "device", name, "power", dev.IsEnabled(), "volume", dev.Volume())

	r.VolumeDown()
	logger.Info("volume down", "device", name, "power", dev.IsEnabled(), "volume", dev.Volume())

	r.TogglePower()
	logger.Info("toggled power", "device", name, "power", dev.IsEnabled(), "volume", dev.Volume())
}

// runAdvanced drives dev through the advanced remote sequence, ending muted.
func runAdvanced(logger *slog.Logger, name string, dev device.Device, tl trace.Logger) {
	r := remote.NewAdvanced(dev)
	if tl != nil {
		r.SetTraceLogger(tl)
	}
	logger.Info("advanced remote paired", "device", name, "session", r.SessionID())

	r.TogglePower()
	logger.Info("toggled power", "device", name, "power", dev.IsEnabled(), "volume", dev.Volume())

	r.VolumeUp()
	r.VolumeUp()
	logger.Info("volume up twice", "device", name, "power", dev.IsEnabled(), "volume", dev.Volume())

	r.Mute()
	logger.Info("muted", "device", name, "power", dev.IsEnabled(), "volume", dev.Volume())
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
