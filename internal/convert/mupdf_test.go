// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/extract-pdf/internal/pdftest"
	"github.com/pdiddy/extract-pdf/pkg/types"
)

func TestMuPDFConverter(t *testing.T) {
	path := pdftest.Write(t, t.TempDir(), "doc.pdf",
		pdftest.HeadingAndParagraph(),
		pdftest.Page{{Size: 12, Y: 700, Text: "Second page."}},
	)
	conv := NewMuPDFConverter("|PAGE|", nopLogger())

	got, err := conv.Convert(context.Background(), path)
	require.NoError(t, err)
	assert.Contains(t, got, "Heading")
	assert.Contains(t, got, "Paragraph text here.")
	assert.Contains(t, got, "|PAGE|Second page.")
}

func TestMuPDFConverter_MissingFile(t *testing.T) {
	conv := NewMuPDFConverter("\n\n", nopLogger())
	_, err := conv.Convert(context.Background(), "/no/such/missing.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening PDF /no/such/missing.pdf")
}

func TestPDFiumConverter(t *testing.T) {
	if testing.Short() {
		t.Skip("starts a WebAssembly PDFium runtime")
	}
	conv := NewPDFiumConverter(types.PDFiumConfig{})

	t.Run("converts text", func(t *testing.T) {
		path := pdftest.Write(t, t.TempDir(), "doc.pdf", pdftest.HeadingAndParagraph())
		got, err := conv.Convert(context.Background(), path)
		require.NoError(t, err)
		assert.Contains(t, got, "Heading")
		assert.Contains(t, got, "Paragraph text here.")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := conv.Convert(context.Background(), "/no/such/missing.pdf")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "/no/such/missing.pdf")
	})
}

func TestNewPDFiumConverter_DefaultTimeout(t *testing.T) {
	want := types.DefaultExtractionConfig().PDFium.InstanceTimeout
	assert.Equal(t, want, NewPDFiumConverter(types.PDFiumConfig{}).instanceTimeout)
	assert.Equal(t, want, NewPDFiumConverter(types.PDFiumConfig{InstanceTimeout: -time.Second}).instanceTimeout)
	assert.Equal(t, 5*time.Second, NewPDFiumConverter(types.PDFiumConfig{InstanceTimeout: 5 * time.Second}).instanceTimeout)
}
