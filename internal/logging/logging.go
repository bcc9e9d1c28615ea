// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the zap logger used for diagnostics. Logs always go
// to a writer the caller chooses (stderr in the CLI) so that stdout carries
// only the extraction record.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/extract-pdf/pkg/types"
)

const (
	formatConsole = "console"
	formatJSON    = "json"

	defaultLevel = zapcore.WarnLevel
)

// New returns a logger writing to w at the configured level and encoding.
// An empty level means warn; an empty format means console.
func New(cfg types.LogConfig, w io.Writer) (*zap.Logger, error) {
	level := defaultLevel
	if cfg.Level != "" {
		l, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
		}
		level = l
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch cfg.Format {
	case "", formatConsole:
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	case formatJSON:
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, fmt.Errorf("unknown log format %q (want %s or %s)", cfg.Format, formatConsole, formatJSON)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return zap.New(core), nil
}
