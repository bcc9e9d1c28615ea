// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// fakeConverter implements Converter for testing. It returns canned Markdown,
// an error, or panics, depending on configuration.
type fakeConverter struct {
	output  string
	err     error
	panicV  any
	calls   int
	gotPath string
}

func (f *fakeConverter) Name() string { return "fake" }

func (f *fakeConverter) Convert(_ context.Context, pdfPath string) (string, error) {
	f.calls++
	f.gotPath = pdfPath
	if f.panicV != nil {
		panic(f.panicV)
	}
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		conv *fakeConverter
		want Result
	}{
		{
			name: "successful conversion",
			conv: &fakeConverter{output: "# Heading\n\nParagraph text..."},
			want: Result{Success: true, Text: "# Heading\n\nParagraph text...", Length: 28},
		},
		{
			name: "empty document is still a success",
			conv: &fakeConverter{output: ""},
			want: Result{Success: true, Text: "", Length: 0},
		},
		{
			name: "length counts code points",
			conv: &fakeConverter{output: "café ✓"},
			want: Result{Success: true, Text: "café ✓", Length: 6},
		},
		{
			name: "backend error",
			conv: &fakeConverter{err: errors.New("opening PDF missing.pdf: open missing.pdf: no such file or directory")},
			want: Result{Error: "opening PDF missing.pdf: open missing.pdf: no such file or directory"},
		},
		{
			name: "empty error message falls back",
			conv: &fakeConverter{err: errors.New("")},
			want: Result{Error: fallbackError},
		},
		{
			name: "panic is contained",
			conv: &fakeConverter{panicV: "malformed PDF: missing xref"},
			want: Result{Error: "fake backend panicked on doc.pdf: malformed PDF: missing xref"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := NewExtractor(tt.conv, nil)
			got := ex.Extract(context.Background(), "doc.pdf")
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "doc.pdf", tt.conv.gotPath)
			assert.Equal(t, 1, tt.conv.calls)
		})
	}
}

func TestExtract_Idempotent(t *testing.T) {
	conv := &fakeConverter{output: "# Title\n\nBody."}
	ex := NewExtractor(conv, nil)

	first := ex.Extract(context.Background(), "doc.pdf")
	second := ex.Extract(context.Background(), "doc.pdf")
	assert.Equal(t, first, second)
}

func TestExtract_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ex := NewExtractor(&fakeConverter{output: "# Title\n\nBody."}, zap.New(core))
	ex.Extract(context.Background(), "doc.pdf")

	entries := logs.FilterMessage("extraction succeeded").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "fake", fields["backend"])
	assert.Equal(t, "doc.pdf", fields["path"])
	assert.EqualValues(t, 14, fields["length"])
	md, ok := fields["markdown"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1, md["headings"])

	ex = NewExtractor(&fakeConverter{err: errors.New("boom")}, zap.New(core))
	ex.Extract(context.Background(), "bad.pdf")
	assert.Equal(t, 1, logs.FilterMessage("extraction failed").Len())
}

func TestResultWriteTo(t *testing.T) {
	tests := []struct {
		name string
		res  Result
		want string
	}{
		{
			name: "success record",
			res:  Success("# Heading\n\nBody"),
			want: `{"success":true,"text":"# Heading\n\nBody","length":15}` + "\n",
		},
		{
			name: "empty success keeps text and length",
			res:  Success(""),
			want: `{"success":true,"text":"","length":0}` + "\n",
		},
		{
			name: "failure record",
			res:  Failure(errors.New("no such file")),
			want: `{"success":false,"error":"no such file"}` + "\n",
		},
		{
			name: "html is not escaped",
			res:  FailureMessage("Usage: extract-pdf <pdf_path>"),
			want: `{"success":false,"error":"Usage: extract-pdf <pdf_path>"}` + "\n",
		},
		{
			name: "nil error still describes the failure",
			res:  Failure(nil),
			want: `{"success":false,"error":"extraction failed"}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := tt.res.WriteTo(&buf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
			assert.EqualValues(t, len(tt.want), n)
		})
	}
}

func TestResultMarshalJSON_ShapesAreExclusive(t *testing.T) {
	data, err := json.Marshal(Success("x"))
	require.NoError(t, err)
	var ok map[string]any
	require.NoError(t, json.Unmarshal(data, &ok))
	assert.ElementsMatch(t, []string{"success", "text", "length"}, keys(ok))

	data, err = json.Marshal(Failure(os.ErrNotExist))
	require.NoError(t, err)
	var failed map[string]any
	require.NoError(t, json.Unmarshal(data, &failed))
	assert.ElementsMatch(t, []string{"success", "error"}, keys(failed))
	assert.Equal(t, false, failed["success"])
	assert.Equal(t, "file does not exist", failed["error"])
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
