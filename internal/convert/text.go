// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	pdflib "github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

const (
	// maxHeadingLevel caps the number of distinct heading sizes.
	maxHeadingLevel = 6
	// wordGap is the horizontal gap, as a fraction of font size, that
	// separates two glyph runs with a space.
	wordGap = 0.2
	// paragraphGap is the vertical gap, as a multiple of font size, that
	// ends a paragraph.
	paragraphGap = 1.5
	// headingRatio is the minimum size, relative to body text, of a
	// heading row.
	headingRatio = 1.15
	// minHeadingLetters keeps drop caps and page numbers out of headings.
	minHeadingLetters = 2
)

// TextConverter builds Markdown from the embedded text layer using
// github.com/ledongthuc/pdf. Rows set larger than the dominant body size
// become headings. Scanned (image-only) PDFs produce empty output.
type TextConverter struct {
	sep    string
	logger *zap.Logger
}

// NewTextConverter returns a text-layer converter joining pages with sep.
func NewTextConverter(sep string, logger *zap.Logger) *TextConverter {
	return &TextConverter{sep: sep, logger: logger}
}

func (c *TextConverter) Name() string { return "text" }

// textRow is one visual line of a page.
type textRow struct {
	y    float64
	size float64
	text string
}

// Convert opens pdfPath, collects every page's rows, then renders them
// once the document-wide body size is known.
func (c *TextConverter) Convert(ctx context.Context, pdfPath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, r, err := pdflib.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	numPages := r.NumPage()
	pages := make([][]textRow, 0, numPages)
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		p := r.Page(i)
		if p.V.IsNull() {
			c.logger.Debug("skipping null page", zap.Int("page", i))
			continue
		}
		pages = append(pages, groupRows(p.Content().Text))
	}

	levels := headingLevels(pages)
	rendered := make([]string, len(pages))
	for i, rows := range pages {
		rendered[i] = renderPage(rows, levels)
	}
	return joinPages(rendered, c.sep), nil
}

// groupRows merges glyph runs sharing a baseline into rows ordered top to
// bottom, inserting spaces where runs are visibly apart.
func groupRows(texts []pdflib.Text) []textRow {
	byY := make(map[float64][]pdflib.Text)
	for _, t := range texts {
		y := math.Round(t.Y)
		byY[y] = append(byY[y], t)
	}

	rows := make([]textRow, 0, len(byY))
	for y, runs := range byY {
		sort.SliceStable(runs, func(i, j int) bool { return runs[i].X < runs[j].X })

		var b strings.Builder
		var size float64
		for i, t := range runs {
			if t.FontSize > size {
				size = t.FontSize
			}
			if i > 0 {
				prev := runs[i-1]
				gap := t.X - (prev.X + prev.W)
				if gap > wordGap*t.FontSize && !endsInSpace(prev.S) && !startsWithSpace(t.S) {
					b.WriteByte(' ')
				}
			}
			b.WriteString(t.S)
		}
		if s := strings.Join(strings.Fields(b.String()), " "); s != "" {
			rows = append(rows, textRow{y: y, size: size, text: s})
		}
	}

	// PDF user space grows upward, so the top row has the largest y.
	sort.Slice(rows, func(i, j int) bool { return rows[i].y > rows[j].y })
	return rows
}

// headingLevels maps each font size at least headingRatio times the body
// size to a heading level, largest first. The body size is the one carrying
// the most characters across the document. Only sizes used by at least one
// heading-like row are ranked.
func headingLevels(pages [][]textRow) map[float64]int {
	weight := make(map[float64]int)
	worded := make(map[float64]bool)
	for _, rows := range pages {
		for _, r := range rows {
			size := math.Round(r.size)
			weight[size] += len([]rune(r.text))
			if headingText(r.text) {
				worded[size] = true
			}
		}
	}

	var body float64
	best := -1
	for size, w := range weight {
		if w > best || (w == best && size < body) {
			body, best = size, w
		}
	}

	var larger []float64
	for size := range worded {
		if size >= headingRatio*body {
			larger = append(larger, size)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(larger)))

	levels := make(map[float64]int, len(larger))
	for i, size := range larger {
		levels[size] = min(i+1, maxHeadingLevel)
	}
	return levels
}

// headingText reports whether s has enough letters to read as a heading.
func headingText(s string) bool {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n >= minHeadingLetters
}

// renderPage turns rows into Markdown blocks separated by blank lines.
func renderPage(rows []textRow, levels map[float64]int) string {
	var blocks []string
	var para []string
	var lastY, lastSize float64

	flush := func() {
		if len(para) > 0 {
			blocks = append(blocks, joinLines(para))
			para = nil
		}
	}

	for _, r := range rows {
		if level, ok := levels[math.Round(r.size)]; ok && headingText(r.text) {
			flush()
			blocks = append(blocks, strings.Repeat("#", level)+" "+r.text)
			continue
		}
		if len(para) > 0 && lastY-r.y > paragraphGap*math.Max(r.size, lastSize) {
			flush()
		}
		para = append(para, r.text)
		lastY, lastSize = r.y, r.size
	}
	flush()
	return strings.Join(blocks, "\n\n")
}

// joinLines reflows paragraph lines, rejoining words hyphenated across a
// line break.
func joinLines(lines []string) string {
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			prev := lines[i-1]
			if strings.HasSuffix(prev, "-") && startsLower(l) {
				s := b.String()
				b.Reset()
				b.WriteString(strings.TrimSuffix(s, "-"))
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(l)
	}
	return b.String()
}

func endsInSpace(s string) bool {
	return s != "" && unicode.IsSpace(rune(s[len(s)-1]))
}

func startsWithSpace(s string) bool {
	return s != "" && unicode.IsSpace(rune(s[0]))
}

func startsLower(s string) bool {
	for _, r := range s {
		return unicode.IsLower(r)
	}
	return false
}
