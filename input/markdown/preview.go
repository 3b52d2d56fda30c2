package markdown

import (
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
)

// Ellipsis is appended to truncated previews.
const Ellipsis = "…"

var setupGraphemes sync.Once

// Preview creates a single-line plain text preview of source, using the
// default parser. See Parser.Preview.
func Preview(source string, width int) string {
	return defaultParser.Preview(source, width)
}

// Preview creates a single-line plain text preview of source. Markup is
// stripped, runs of white space including line breaks are collapsed to a
// single space. If the display width of the result exceeds width, it is
// truncated at a grapheme boundary and Ellipsis is appended, such that the
// preview including the ellipsis fits into width.
//
// Display width is measured in terms of UAX#11 (East Asian Width), i.e. wide
// characters count as 2.
func (p *Parser) Preview(source string, width int) string {
	return PreviewText(p.PlainText(source), width)
}

// PreviewText creates a single-line preview from text which has already been
// reduced to plain text, e.g. by Reduce.
func PreviewText(text string, width int) string {
	if width <= 0 {
		return ""
	}
	text = strings.Join(strings.Fields(text), " ")
	return truncate(text, width)
}

// DisplayWidth returns the display width of text, summing up the UAX#11
// widths of its graphemes.
func DisplayWidth(text string) int {
	w := 0
	eachGrapheme(text, func(grphm []byte) bool {
		w += uax11.Width(grphm, uax11.LatinContext)
		return true
	})
	return w
}

func truncate(text string, width int) string {
	ellipsisWidth := DisplayWidth(Ellipsis)
	w, pos, cut := 0, 0, -1
	truncated := false
	eachGrapheme(text, func(grphm []byte) bool {
		gw := uax11.Width(grphm, uax11.LatinContext)
		if cut < 0 && w+gw > width-ellipsisWidth {
			cut = pos
		}
		w += gw
		pos += len(grphm)
		truncated = w > width
		return !truncated
	})
	if !truncated {
		return text
	}
	if cut < 0 || cut > len(text) {
		tracer().Errorf("markdown: preview cut position %d out of range", cut)
		return Ellipsis
	}
	return strings.TrimRight(text[:cut], " ") + Ellipsis
}

// eachGrapheme calls f for each grapheme cluster of text until f returns false.
func eachGrapheme(text string, f func(grphm []byte) bool) {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	graphemes := segment.NewSegmenter(grapheme.NewBreaker(1))
	graphemes.Init(strings.NewReader(text))
	for graphemes.Next() {
		if !f(graphemes.Bytes()) {
			return
		}
	}
}
