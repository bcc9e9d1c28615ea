// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"time"

	"github.com/ivanvanderbyl/pdfmarkdown"
	"github.com/klippa-app/go-pdfium/webassembly"

	"github.com/pdiddy/extract-pdf/pkg/types"
)

var defaultInstanceTimeout = types.DefaultExtractionConfig().PDFium.InstanceTimeout

// PDFiumConverter converts PDFs with github.com/ivanvanderbyl/pdfmarkdown,
// which lays out Markdown from PDFium's text and font data. PDFium runs as
// WebAssembly, so no cgo or shared library is needed.
type PDFiumConverter struct {
	instanceTimeout time.Duration
}

// NewPDFiumConverter returns a converter that starts a single-instance
// PDFium pool per conversion.
func NewPDFiumConverter(cfg types.PDFiumConfig) *PDFiumConverter {
	timeout := cfg.InstanceTimeout
	if timeout <= 0 {
		timeout = defaultInstanceTimeout
	}
	return &PDFiumConverter{instanceTimeout: timeout}
}

func (c *PDFiumConverter) Name() string { return "pdfium" }

// Convert starts PDFium, converts every page of pdfPath, and tears the pool
// down again before returning.
func (c *PDFiumConverter) Convert(ctx context.Context, pdfPath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	pool, err := webassembly.Init(webassembly.Config{
		MinIdle:  1,
		MaxIdle:  1,
		MaxTotal: 1,
	})
	if err != nil {
		return "", fmt.Errorf("initialising pdfium: %w", err)
	}
	defer pool.Close()

	instance, err := pool.GetInstance(c.instanceTimeout)
	if err != nil {
		return "", fmt.Errorf("getting pdfium instance: %w", err)
	}
	defer instance.Close()

	md, err := pdfmarkdown.NewConverter(instance).ConvertFile(pdfPath)
	if err != nil {
		return "", fmt.Errorf("converting %s with pdfium: %w", pdfPath, err)
	}
	return md, nil
}
