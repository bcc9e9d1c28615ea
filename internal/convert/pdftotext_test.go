// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/extract-pdf/internal/pdftest"
	"github.com/pdiddy/extract-pdf/pkg/types"
)

func TestPdftotextConverter(t *testing.T) {
	tests := []struct {
		name     string
		layout   bool
		stdout   string
		stderr   string
		runErr   error
		want     string
		wantArgs []string
		errMsg   string
	}{
		{
			name:     "form feeds become separators",
			layout:   true,
			stdout:   "page one\n\fpage two\n\f",
			want:     "page one|page two",
			wantArgs: []string{"-layout", "-enc", "UTF-8", "doc.pdf", "-"},
		},
		{
			name:     "no layout flag",
			stdout:   "only page",
			want:     "only page",
			wantArgs: []string{"-enc", "UTF-8", "doc.pdf", "-"},
		},
		{
			name:   "stderr folded into error",
			stderr: "Syntax Error: Couldn't find trailer dictionary\n",
			runErr: errors.New("exit status 1"),
			errMsg: "pdftotext doc.pdf: exit status 1: Syntax Error: Couldn't find trailer dictionary",
		},
		{
			name:   "error without stderr",
			runErr: errors.New("signal: killed"),
			errMsg: "pdftotext doc.pdf: signal: killed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotArgs []string
			conv := &PdftotextConverter{
				bin:    "pdftotext",
				layout: tt.layout,
				sep:    "|",
				run: func(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
					gotArgs = args
					return []byte(tt.stdout), []byte(tt.stderr), tt.runErr
				},
			}

			got, err := conv.Convert(context.Background(), "doc.pdf")
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Equal(t, tt.errMsg, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantArgs, gotArgs)
		})
	}
}

func TestNewPdftotextConverter_MissingBinary(t *testing.T) {
	_, err := NewPdftotextConverter(types.PdftotextConfig{Binary: "pdftotext-does-not-exist"}, "\n\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdftotext backend")
}

func TestPdftotextConverter_Real(t *testing.T) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		t.Skip("pdftotext not installed")
	}
	conv, err := NewPdftotextConverter(types.PdftotextConfig{}, "\n\n")
	require.NoError(t, err)

	path := pdftest.Write(t, t.TempDir(), "doc.pdf", pdftest.HeadingAndParagraph())
	got, err := conv.Convert(context.Background(), path)
	require.NoError(t, err)
	assert.Contains(t, got, "Heading")
	assert.Contains(t, got, "Paragraph text here.")
}
