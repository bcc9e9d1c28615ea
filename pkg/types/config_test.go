// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackendNames(t *testing.T) {
	assert.Equal(t, "text, pdfium, mupdf, pdftotext, markitdown", BackendNames())
}

func TestDefaultExtractionConfig(t *testing.T) {
	cfg := DefaultExtractionConfig()
	assert.Equal(t, BackendText, cfg.Backend)
	assert.Equal(t, DefaultPageSeparator, cfg.PageSeparator)
	assert.Contains(t, Backends, cfg.Backend)
}
