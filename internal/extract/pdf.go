package extract

import (
	"fmt"
	"math"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"
)

// baselineTolerance is how far glyph baselines may drift and still share a line.
const baselineTolerance = 0.5

// PDFExtractor reads the embedded text layer of a PDF. Scanned, image-only
// statements come back empty.
type PDFExtractor struct{}

// Extract returns every text fragment of the document on its own line.
// Each page starts with a blank line and each fragment with "\n".
func (e *PDFExtractor) Extract(path string) (text string, err error) {
	// The pdf package panics on some malformed files.
	defer func() {
		if p := recover(); p != nil {
			text, err = "", fmt.Errorf("reading pdf %s: %v", path, p)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		b.WriteString("\n\n")
		for _, frag := range Fragments(p.Content().Text) {
			b.WriteString("\n")
			b.WriteString(frag)
		}
	}
	return b.String(), nil
}

// Fragments groups positioned glyphs, in content-stream order, into text
// items. An item ends when the baseline moves, when the next glyph jumps
// back left, or when the horizontal gap is wider than a word space
// (2/3 of the font size). Narrower gaps above 1/6 of the font size become
// a space. Items are whitespace-normalized and empty ones dropped.
func Fragments(glyphs []pdf.Text) []string {
	var out []string
	var b strings.Builder

	flush := func() {
		if s := NormalizeSpace(b.String()); s != "" {
			out = append(out, s)
		}
		b.Reset()
	}

	var prev pdf.Text
	var end float64
	for i, g := range glyphs {
		if i > 0 {
			charSpace := prev.FontSize / 6
			wordSpace := prev.FontSize * 2 / 3
			gap := g.X - end
			switch {
			case math.Abs(g.Y-prev.Y) > baselineTolerance, gap > wordSpace, gap < -wordSpace:
				flush()
			case gap > charSpace:
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.S)
		prev = g
		end = g.X + g.W
	}
	flush()
	return out
}

// NormalizeSpace folds compatibility characters (non-breaking spaces,
// ligatures) with NFKC and collapses whitespace runs to single spaces.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(norm.NFKC.String(s)), " ")
}
