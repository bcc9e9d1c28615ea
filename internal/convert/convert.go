// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements PDF-to-Markdown conversion with pluggable
// backends. Each backend wraps one third-party library or external tool;
// none of them parses PDF syntax itself.
package convert

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/extract-pdf/internal/container"
	"github.com/pdiddy/extract-pdf/pkg/types"
)

// Converter transforms a PDF file into Markdown text. Different backends
// (ledongthuc/pdf, PDFium, MuPDF, pdftotext, markitdown) implement this
// interface.
type Converter interface {
	// Name returns the backend name used in configuration.
	Name() string

	// Convert reads a PDF at pdfPath and returns the Markdown content.
	Convert(ctx context.Context, pdfPath string) (string, error)
}

// detectRuntime is swapped in tests to avoid probing the host.
var detectRuntime = container.DetectRuntime

// New builds the backend selected by cfg.Backend. An empty backend selects
// the pure-Go text backend.
func New(ctx context.Context, cfg types.ExtractionConfig, logger *zap.Logger) (Converter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	sep := cfg.PageSeparator
	if sep == "" {
		sep = types.DefaultPageSeparator
	}

	switch cfg.Backend {
	case "", types.BackendText:
		return NewTextConverter(sep, logger.Named(string(types.BackendText))), nil
	case types.BackendPDFium:
		return NewPDFiumConverter(cfg.PDFium), nil
	case types.BackendMuPDF:
		return NewMuPDFConverter(sep, logger.Named(string(types.BackendMuPDF))), nil
	case types.BackendPdftotext:
		return NewPdftotextConverter(cfg.Pdftotext, sep)
	case types.BackendMarkitdown:
		rt, err := detectRuntime(ctx)
		if err != nil {
			return nil, fmt.Errorf("markitdown backend: %w", err)
		}
		return NewMarkitdownConverter(ctx, rt, cfg.Markitdown.Image)
	default:
		return nil, fmt.Errorf("unknown conversion backend %q (want one of %s)", cfg.Backend, types.BackendNames())
	}
}

// joinPages trims each page, drops blank ones, and joins the rest with sep.
func joinPages(pages []string, sep string) string {
	kept := make([]string, 0, len(pages))
	for _, p := range pages {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
