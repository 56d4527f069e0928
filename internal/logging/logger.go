// Package logging builds the process logger. One zap.Logger is constructed
// at startup and passed explicitly into every pipeline component; nothing
// in internal/ reaches for a package-level logger.
//
// Output tees a console core (stderr, so stdout stays free for the report)
// and an append-only log file. The file is the only artifact that survives
// a run.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"appsweep/internal/config"
)

// New builds a logger from the logging config. verbose forces the debug
// level regardless of the configured one. When the log file cannot be
// opened, the logger degrades to console-only with a warning on stderr
// rather than failing the run.
func New(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	var cores []zapcore.Core

	if cfg.Console {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(os.Stderr),
			level,
		))
	}

	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v\n", cfg.File, err)
		} else {
			encCfg := zap.NewProductionEncoderConfig()
			encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
			var enc zapcore.Encoder
			if cfg.Format == "json" {
				enc = zapcore.NewJSONEncoder(encCfg)
			} else {
				enc = zapcore.NewConsoleEncoder(encCfg)
			}
			cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(file), level))
		}
	}

	if len(cores) == 0 {
		return zap.NewNop(), nil
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}

func parseLevel(s string) (zapcore.Level, error) {
	switch s {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", s)
}
