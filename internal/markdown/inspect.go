// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown inspects converted Markdown without modifying it. The
// counts feed diagnostic logging so a caller can tell a structured
// conversion from a flat text dump.
package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"go.uber.org/zap/zapcore"
)

// Stats summarizes the block structure of a Markdown document.
type Stats struct {
	Headings   int
	Paragraphs int
	Lists      int
	Tables     int
	CodeBlocks int
	// MaxHeadingLevel is the deepest heading level seen (0 when none).
	MaxHeadingLevel int
}

// MarshalLogObject lets Stats be logged with zap.Object.
func (s Stats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("headings", s.Headings)
	enc.AddInt("paragraphs", s.Paragraphs)
	enc.AddInt("lists", s.Lists)
	enc.AddInt("tables", s.Tables)
	enc.AddInt("code_blocks", s.CodeBlocks)
	enc.AddInt("max_heading_level", s.MaxHeadingLevel)
	return nil
}

var parser = goldmark.New(goldmark.WithExtensions(extension.Table)).Parser()

// Inspect parses src and counts its block-level nodes.
func Inspect(src string) Stats {
	var s Stats
	if src == "" {
		return s
	}

	doc := parser.Parse(text.NewReader([]byte(src)))
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			s.Headings++
			if node.Level > s.MaxHeadingLevel {
				s.MaxHeadingLevel = node.Level
			}
		case *ast.Paragraph:
			s.Paragraphs++
		case *ast.List:
			s.Lists++
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			s.CodeBlocks++
		case *east.Table:
			s.Tables++
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return s
}
