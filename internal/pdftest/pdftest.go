// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftest builds small, valid PDF files for tests. Each page is a
// list of single-line text runs in Helvetica at a given size and baseline.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Line is one run of text drawn at (72, Y) in points.
type Line struct {
	Size float64
	Y    float64
	Text string
}

// Page is the sequence of lines drawn on one page.
type Page []Line

const (
	objCatalog = 1
	objPages   = 2
	objFont    = 3
	firstPage  = 4
)

// Build returns the bytes of a PDF with one page per argument. Object
// offsets in the xref table are exact, so strict readers accept it.
func Build(pages ...Page) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	total := firstPage - 1 + 2*len(pages)
	offsets := make([]int, total+1)
	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", firstPage+2*i)
	}

	writeObj(objCatalog, fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", objPages))
	writeObj(objPages, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	writeObj(objFont, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for i, p := range pages {
		pageNum := firstPage + 2*i
		contentNum := pageNum + 1
		writeObj(pageNum, fmt.Sprintf(
			"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>",
			objPages, objFont, contentNum))

		content := contentStream(p)
		writeObj(contentNum, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", total+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets[1:] {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n", total+1, objCatalog, xref)
	return buf.Bytes()
}

func contentStream(p Page) string {
	var b strings.Builder
	for _, l := range p {
		fmt.Fprintf(&b, "BT /F1 %g Tf 72 %g Td (%s) Tj ET\n", l.Size, l.Y, escape(l.Text))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

var escaper = strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)

func escape(s string) string { return escaper.Replace(s) }

// Write builds a PDF from pages into dir/name and returns its path.
func Write(t *testing.T, dir, name string, pages ...Page) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, Build(pages...), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// HeadingAndParagraph is a one-page document with a 24pt heading above a
// 12pt paragraph.
func HeadingAndParagraph() Page {
	return Page{
		{Size: 24, Y: 720, Text: "Heading"},
		{Size: 12, Y: 690, Text: "Paragraph text here."},
	}
}
