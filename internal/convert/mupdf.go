// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"

	"github.com/gen2brain/go-fitz"
	"go.uber.org/zap"
)

// MuPDFConverter extracts page text with MuPDF through
// github.com/gen2brain/go-fitz.
type MuPDFConverter struct {
	sep    string
	logger *zap.Logger
}

// NewMuPDFConverter returns a MuPDF converter joining pages with sep.
func NewMuPDFConverter(sep string, logger *zap.Logger) *MuPDFConverter {
	return &MuPDFConverter{sep: sep, logger: logger}
}

func (c *MuPDFConverter) Name() string { return "mupdf" }

// Convert reads every page of pdfPath in order. A page that MuPDF cannot
// read fails the whole conversion.
func (c *MuPDFConverter) Convert(ctx context.Context, pdfPath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc, err := fitz.New(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer doc.Close()

	n := doc.NumPage()
	pages := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("reading page %d of %s: %w", i+1, pdfPath, err)
		}
		pages = append(pages, text)
	}
	c.logger.Debug("read pages", zap.String("path", pdfPath), zap.Int("pages", n))

	return joinPages(pages, c.sep), nil
}
