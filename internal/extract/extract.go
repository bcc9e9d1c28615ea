// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns one PDF into an extraction Result. It is the single
// error boundary around the conversion backends: every error or panic a
// backend raises becomes a failed Result, never an error or a crash.
package extract

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/extract-pdf/internal/markdown"
)

// Converter is the conversion capability the Extractor delegates to.
// convert.Converter satisfies it.
type Converter interface {
	Name() string
	Convert(ctx context.Context, pdfPath string) (string, error)
}

// Extractor runs a Converter and normalizes its outcome.
type Extractor struct {
	conv   Converter
	logger *zap.Logger
}

// NewExtractor returns an Extractor backed by conv. A nil logger discards
// diagnostics.
func NewExtractor(conv Converter, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{conv: conv, logger: logger}
}

// Extract converts the PDF at path to Markdown. No validation happens here;
// a missing or malformed file is reported by the backend and comes back as a
// failed Result.
func (e *Extractor) Extract(ctx context.Context, path string) Result {
	log := e.logger.With(zap.String("backend", e.conv.Name()), zap.String("path", path))
	start := time.Now()

	text, err := e.convert(ctx, path)
	if err != nil {
		log.Warn("extraction failed", zap.Duration("elapsed", time.Since(start)), zap.Error(err))
		return Failure(err)
	}

	res := Success(text)
	if ce := log.Check(zap.DebugLevel, "extraction succeeded"); ce != nil {
		ce.Write(
			zap.Duration("elapsed", time.Since(start)),
			zap.Int("length", res.Length),
			zap.Object("markdown", markdown.Inspect(text)),
		)
	}
	return res
}

// convert calls the backend, turning a panic into an error.
func (e *Extractor) convert(ctx context.Context, path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s backend panicked on %s: %v", e.conv.Name(), path, r)
		}
	}()
	return e.conv.Convert(ctx, path)
}
