// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/pdiddy/extract-pdf/pkg/types"
)

// commandRunner runs a binary and returns its stdout and stderr.
type commandRunner func(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// PdftotextConverter shells out to poppler's pdftotext. Form feeds between
// pages are replaced by the page separator.
type PdftotextConverter struct {
	bin    string
	layout bool
	sep    string
	run    commandRunner
}

// NewPdftotextConverter resolves the pdftotext binary on PATH and returns a
// converter that uses it.
func NewPdftotextConverter(cfg types.PdftotextConfig, sep string) (*PdftotextConverter, error) {
	bin := cfg.Binary
	if bin == "" {
		bin = "pdftotext"
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("pdftotext backend: %w", err)
	}
	return &PdftotextConverter{bin: path, layout: cfg.Layout, sep: sep, run: runCommand}, nil
}

func (c *PdftotextConverter) Name() string { return "pdftotext" }

// Convert runs pdftotext on pdfPath, writing text to stdout.
func (c *PdftotextConverter) Convert(ctx context.Context, pdfPath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	args := make([]string, 0, 4)
	if c.layout {
		args = append(args, "-layout")
	}
	args = append(args, "-enc", "UTF-8", pdfPath, "-")

	out, stderr, err := c.run(ctx, c.bin, args...)
	if err != nil {
		if msg := strings.TrimSpace(string(stderr)); msg != "" {
			return "", fmt.Errorf("pdftotext %s: %w: %s", pdfPath, err, msg)
		}
		return "", fmt.Errorf("pdftotext %s: %w", pdfPath, err)
	}

	return joinPages(strings.Split(string(out), "\f"), c.sep), nil
}
