// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the configuration shared by the extract-pdf CLI and
// its conversion backends.
package types

import (
	"strings"
	"time"
)

// ConversionBackend identifies the PDF-to-Markdown conversion tool.
type ConversionBackend string

const (
	BackendText       ConversionBackend = "text"
	BackendPDFium     ConversionBackend = "pdfium"
	BackendMuPDF      ConversionBackend = "mupdf"
	BackendPdftotext  ConversionBackend = "pdftotext"
	BackendMarkitdown ConversionBackend = "markitdown"
)

// Backends lists every supported backend in help-text order.
var Backends = []ConversionBackend{
	BackendText,
	BackendPDFium,
	BackendMuPDF,
	BackendPdftotext,
	BackendMarkitdown,
}

// BackendNames returns the supported backend names as a comma-separated
// list for help and error text.
func BackendNames() string {
	names := make([]string, len(Backends))
	for i, b := range Backends {
		names[i] = string(b)
	}
	return strings.Join(names, ", ")
}

// DefaultPageSeparator is placed between page texts by backends that
// assemble Markdown page by page.
const DefaultPageSeparator = "\n\n-----\n\n"

// PdftotextConfig holds settings for the poppler pdftotext backend.
type PdftotextConfig struct {
	// Binary is the pdftotext executable name or path (default "pdftotext").
	Binary string `json:"binary" yaml:"binary" mapstructure:"binary"`

	// Layout passes -layout to preserve the physical page layout.
	Layout bool `json:"layout" yaml:"layout" mapstructure:"layout"`
}

// MarkitdownConfig holds settings for the container-based markitdown backend.
type MarkitdownConfig struct {
	// Image is the container image that reads a PDF on stdin and writes
	// Markdown on stdout (default "markitdown:latest").
	Image string `json:"image" yaml:"image" mapstructure:"image"`
}

// PDFiumConfig holds settings for the WebAssembly PDFium backend.
type PDFiumConfig struct {
	// InstanceTimeout bounds the wait for a PDFium instance from the pool
	// (default 30s).
	InstanceTimeout time.Duration `json:"instance_timeout" yaml:"instance_timeout" mapstructure:"instance_timeout"`
}

// LogConfig selects the level and encoding of diagnostic logs on stderr.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error (default warn).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "console" or "json" (default console).
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// ExtractionConfig groups every setting that shapes a single extraction run.
type ExtractionConfig struct {
	// Backend selects the conversion tool.
	Backend ConversionBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// PageSeparator joins page texts for the text and mupdf backends, and
	// replaces form feeds in pdftotext output.
	PageSeparator string `json:"page_separator" yaml:"page_separator" mapstructure:"page_separator"`

	Pdftotext  PdftotextConfig  `json:"pdftotext" yaml:"pdftotext" mapstructure:"pdftotext"`
	Markitdown MarkitdownConfig `json:"markitdown" yaml:"markitdown" mapstructure:"markitdown"`
	PDFium     PDFiumConfig     `json:"pdfium" yaml:"pdfium" mapstructure:"pdfium"`
	Log        LogConfig        `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultExtractionConfig returns the configuration used when neither a
// config file, environment variables, nor flags override anything.
func DefaultExtractionConfig() ExtractionConfig {
	return ExtractionConfig{
		Backend:       BackendText,
		PageSeparator: DefaultPageSeparator,
		Pdftotext: PdftotextConfig{
			Binary: "pdftotext",
			Layout: true,
		},
		Markitdown: MarkitdownConfig{
			Image: "markitdown:latest",
		},
		PDFium: PDFiumConfig{
			InstanceTimeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}
