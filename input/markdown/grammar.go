package markdown

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/mdtree/core/parameters"
)

// Form is a syntactic form recognized by the grammar. The numeric order of
// forms is their priority: if more than one form matches at the same position,
// the one with the lower value wins.
type Form int8

// Forms, in priority order
const (
	FormUnorderedListItem Form = iota
	FormHeader
	FormQuote
	FormItalic
	FormBold
	FormStrike
	FormRule
	FormInlineCode
	FormLink
	FormOrderedListItem
	FormImage
	FormBlockCode
	formCount
)

var formNames = [...]string{
	"unordered-list-item",
	"header",
	"quote",
	"italic",
	"bold",
	"strike",
	"horizontal-rule",
	"inline-code",
	"link",
	"ordered-list-item",
	"image",
	"fenced-code-block",
}

func (f Form) String() string {
	if f < 0 || f >= formCount {
		return fmt.Sprintf("Form(%d)", f)
	}
	return formNames[f]
}

// Kind returns the kind of element produced for a match of form f.
func (f Form) Kind() Kind {
	switch f {
	case FormUnorderedListItem:
		return UnorderedListItemKind
	case FormHeader:
		return HeaderKind
	case FormQuote:
		return QuoteKind
	case FormItalic:
		return ItalicKind
	case FormBold:
		return BoldKind
	case FormStrike:
		return StrikeKind
	case FormRule:
		return RuleKind
	case FormInlineCode:
		return InlineCodeKind
	case FormLink:
		return LinkKind
	case FormOrderedListItem:
		return OrderedListItemKind
	case FormImage:
		return ImageKind
	case FormBlockCode:
		return BlockCodeKind
	}
	return TextKind
}

// Match is the result of a successful recognizer. All spans are byte positions
// of the scanned text.
type Match struct {
	Form  Form
	Span  Span // consumed text, delimiters included
	Inner Span // text with delimiters removed; for images the alt text
	Extra Span // order label, link target or parenthesized image details
	Level int  // header level
}

func (m Match) String() string {
	return fmt.Sprintf("%s%v", m.Form, m.Span)
}

type recognizer func(g *Grammar, s string, i int) (Match, bool)

// Grammar is a set of recognizers for markdown forms, with a fixed priority
// order. A Grammar is immutable after construction and may be shared between
// goroutines.
type Grammar struct {
	forms        [formCount]recognizer
	dispatch     [256][]Form // forms which may start with a given byte, in priority order
	imageDetails *regexp.Regexp
	reach        int // bytes searched for a closing delimiter, 0 for no limit
}

// GrammarOption configures a grammar.
type GrammarOption func(*Grammar)

// WithScanLimit restricts inline forms (emphasis, code, links, images) to
// n bytes from their opening delimiter. This bounds the work per scan
// position, which otherwise grows with the length of a line full of unclosed
// delimiters. n = 0 lifts the restriction.
func WithScanLimit(n int) GrammarOption {
	return func(g *Grammar) {
		if n < 0 {
			n = 0
		}
		g.reach = n
	}
}

// NewGrammar creates the grammar for all forms. Without options, inline forms
// are limited to parameters.DefaultMaxScan bytes.
func NewGrammar(opts ...GrammarOption) *Grammar {
	g := &Grammar{
		imageDetails: regexp.MustCompile(`^(\S+)(?:\s+"(.*)")?$`),
		reach:        parameters.DefaultMaxScan,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.add(FormUnorderedListItem, "+*-", (*Grammar).unorderedListItem)
	g.add(FormHeader, "#", (*Grammar).header)
	g.add(FormQuote, ">", (*Grammar).quote)
	g.add(FormItalic, "*_", (*Grammar).italic)
	g.add(FormBold, "*_", (*Grammar).bold)
	g.add(FormStrike, "~", (*Grammar).strike)
	g.add(FormRule, "-_*", (*Grammar).rule)
	g.add(FormInlineCode, "`", (*Grammar).inlineCode)
	g.add(FormLink, "[", (*Grammar).link)
	g.add(FormOrderedListItem, "0123456789", (*Grammar).orderedListItem)
	g.add(FormImage, "!", (*Grammar).image)
	g.add(FormBlockCode, "`", (*Grammar).blockCode)
	return g
}

// add has to be called in priority order.
func (g *Grammar) add(f Form, first string, r recognizer) {
	g.forms[f] = r
	for i := 0; i < len(first); i++ {
		g.dispatch[first[i]] = append(g.dispatch[first[i]], f)
	}
}

// ScanLimit returns the maximum length of inline forms, or 0 if unlimited.
func (g *Grammar) ScanLimit() int {
	return g.reach
}

// limit is the position up to which an inline form starting at i may extend.
func (g *Grammar) limit(s string, i int) int {
	if g.reach > 0 && i+g.reach < len(s) {
		return i + g.reach
	}
	return len(s)
}

// Next finds the leftmost match in s, starting the search at position from.
// Ties at the same position are broken by form priority.
func (g *Grammar) Next(s string, from int) (Match, bool) {
	for i := from; i < len(s); i++ {
		if m, ok := g.MatchAt(s, i); ok {
			return m, true
		}
	}
	return Match{}, false
}

// MatchAt tries all forms, in priority order, at position i of s.
func (g *Grammar) MatchAt(s string, i int) (Match, bool) {
	if i < 0 || i >= len(s) {
		return Match{}, false
	}
	for _, f := range g.dispatch[s[i]] {
		if m, ok := g.forms[f](g, s, i); ok {
			return m, true
		}
	}
	return Match{}, false
}

// Candidates returns every form which matches at position i of s, in priority
// order. Only the first one would be selected by MatchAt.
func (g *Grammar) Candidates(s string, i int) []Match {
	if i < 0 || i >= len(s) {
		return nil
	}
	var matches []Match
	for _, f := range g.dispatch[s[i]] {
		if m, ok := g.forms[f](g, s, i); ok {
			matches = append(matches, m)
		}
	}
	return matches
}

// --- Helpers ---------------------------------------------------------------

func isLineTerminator(c byte) bool {
	return c == '\n' || c == '\r'
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

// isLineStart is true for position 0 and for positions directly after a line
// break. The second byte of "\r\n" is not a line start.
func isLineStart(s string, i int) bool {
	if i == 0 {
		return true
	}
	switch s[i-1] {
	case '\n':
		return true
	case '\r':
		return i >= len(s) || s[i] != '\n'
	}
	return false
}

// lineEnd returns the position of the first line terminator at or after i,
// or len(s).
func lineEnd(s string, i int) int {
	if j := strings.IndexAny(s[i:], "\r\n"); j >= 0 {
		return i + j
	}
	return len(s)
}

func at(s string, i int) byte {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

// markedLine recognizes a line starting with a marker of length n, followed by
// a blank and at least one more character. The match extends to the end of the
// line.
func markedLine(f Form, s string, i, n int) (Match, bool) {
	if !isBlank(at(s, i+n)) {
		return Match{}, false
	}
	eol := lineEnd(s, i)
	if eol <= i+n+1 {
		return Match{}, false
	}
	return Match{
		Form:  f,
		Span:  Span{i, eol},
		Inner: Span{i + n + 1, eol},
	}, true
}

// --- Line-anchored forms ---------------------------------------------------

func (g *Grammar) unorderedListItem(s string, i int) (Match, bool) {
	if !isLineStart(s, i) {
		return Match{}, false
	}
	return markedLine(FormUnorderedListItem, s, i, 1)
}

func (g *Grammar) header(s string, i int) (Match, bool) {
	if !isLineStart(s, i) {
		return Match{}, false
	}
	n := 0
	for at(s, i+n) == '#' {
		n++
	}
	if n > 6 {
		return Match{}, false
	}
	m, ok := markedLine(FormHeader, s, i, n)
	m.Level = n
	return m, ok
}

func (g *Grammar) quote(s string, i int) (Match, bool) {
	if !isLineStart(s, i) {
		return Match{}, false
	}
	return markedLine(FormQuote, s, i, 1)
}

func (g *Grammar) orderedListItem(s string, i int) (Match, bool) {
	if !isLineStart(s, i) {
		return Match{}, false
	}
	n := 0
	for c := at(s, i+n); c >= '0' && c <= '9'; c = at(s, i+n) {
		n++
	}
	if n == 0 || at(s, i+n) != '.' {
		return Match{}, false
	}
	m, ok := markedLine(FormOrderedListItem, s, i, n+1)
	m.Extra = Span{i, i + n + 1}
	return m, ok
}

// rule recognizes a line of three or more of '-', '_' and '*'.
func (g *Grammar) rule(s string, i int) (Match, bool) {
	if !isLineStart(s, i) {
		return Match{}, false
	}
	eol := lineEnd(s, i)
	if eol-i < 3 {
		return Match{}, false
	}
	for j := i; j < eol; j++ {
		if c := s[j]; c != '-' && c != '_' && c != '*' {
			return Match{}, false
		}
	}
	return Match{
		Form:  FormRule,
		Span:  Span{i, eol},
		Inner: Span{eol, eol},
	}, true
}

// blockCode recognizes a fenced code block. It is the only form spanning
// multiple lines. The closing fence has to be followed by a line break or the
// end of input; without a closing fence the block extends to the end of input.
// Inner text excludes the line break after the opening fence and the line
// break before the closing fence.
func (g *Grammar) blockCode(s string, i int) (Match, bool) {
	const fence = "```"
	if !isLineStart(s, i) || !strings.HasPrefix(s[i:], fence) {
		return Match{}, false
	}
	from := i + len(fence)
	if from >= len(s) {
		return Match{}, false
	}
	end, to := len(s), len(s)
	for q := from + 1; q+len(fence) <= len(s); q++ {
		if s[q:q+len(fence)] != fence {
			continue
		}
		if e := q + len(fence); e == len(s) || isLineTerminator(s[e]) {
			end, to = e, q
			break
		}
	}
	inner := Span{from, to}
	inner.Start += lineBreakAt(s, inner.Start, inner.End)
	inner.End -= lineBreakBefore(s, inner.Start, inner.End)
	return Match{
		Form:  FormBlockCode,
		Span:  Span{i, end},
		Inner: inner,
	}, true
}

// lineBreakAt returns the length of a line break at position i, not extending
// beyond limit.
func lineBreakAt(s string, i, limit int) int {
	switch {
	case i+1 < limit && s[i] == '\r' && s[i+1] == '\n':
		return 2
	case i < limit && isLineTerminator(s[i]):
		return 1
	}
	return 0
}

// lineBreakBefore returns the length of a line break ending at position i,
// not extending before limit.
func lineBreakBefore(s string, limit, i int) int {
	switch {
	case i-2 >= limit && s[i-2] == '\r' && s[i-1] == '\n':
		return 2
	case i-1 >= limit && isLineTerminator(s[i-1]):
		return 1
	}
	return 0
}

// --- Inline forms ----------------------------------------------------------

// italic recognizes text enclosed in single '*' or '_'. Neither delimiter
// may be adjacent to another copy of itself, which keeps italic apart from bold.
func (g *Grammar) italic(s string, i int) (Match, bool) {
	d := s[i]
	if at(s, i-1) == d {
		return Match{}, false
	}
	if c := at(s, i+1); c == 0 || c == d || isLineTerminator(c) {
		return Match{}, false
	}
	end := g.limit(s, i)
	for q := i + 2; q < end; q++ {
		if isLineTerminator(s[q]) {
			break
		}
		if s[q] == d && s[q-1] != d && at(s, q+1) != d {
			return Match{
				Form:  FormItalic,
				Span:  Span{i, q + 1},
				Inner: Span{i + 1, q},
			}, true
		}
	}
	return Match{}, false
}

// bold recognizes text enclosed in "**" or "__". The opening delimiter must
// not be preceded and the closing delimiter must not be followed by another
// copy of the delimiter character. The body must neither start nor end with
// the delimiter character.
func (g *Grammar) bold(s string, i int) (Match, bool) {
	d := s[i]
	if at(s, i+1) != d || at(s, i-1) == d {
		return Match{}, false
	}
	if c := at(s, i+2); c == 0 || c == d || isLineTerminator(c) {
		return Match{}, false
	}
	end := g.limit(s, i)
	for q := i + 3; q+1 < end; q++ {
		if isLineTerminator(s[q]) {
			break
		}
		if s[q] == d && s[q+1] == d && s[q-1] != d && at(s, q+2) != d {
			return Match{
				Form:  FormBold,
				Span:  Span{i, q + 2},
				Inner: Span{i + 2, q},
			}, true
		}
	}
	return Match{}, false
}

func (g *Grammar) strike(s string, i int) (Match, bool) {
	if at(s, i+1) != '~' || at(s, i-1) == '~' {
		return Match{}, false
	}
	q, end := i+2, g.limit(s, i)
	for q < end && s[q] != '~' && !isLineTerminator(s[q]) {
		q++
	}
	if q == i+2 || q+2 > end || !strings.HasPrefix(s[q:], "~~") {
		return Match{}, false
	}
	return Match{
		Form:  FormStrike,
		Span:  Span{i, q + 2},
		Inner: Span{i + 2, q},
	}, true
}

func (g *Grammar) inlineCode(s string, i int) (Match, bool) {
	if at(s, i-1) == '`' {
		return Match{}, false
	}
	if c := at(s, i+1); c == 0 || c == '`' || c == ' ' || c == '\t' || isLineTerminator(c) {
		return Match{}, false
	}
	end := g.limit(s, i)
	for q := i + 2; q < end; q++ {
		if isLineTerminator(s[q]) {
			break
		}
		if s[q] == '`' && at(s, q+1) != '`' {
			return Match{
				Form:  FormInlineCode,
				Span:  Span{i, q + 1},
				Inner: Span{i + 1, q},
			}, true
		}
	}
	return Match{}, false
}

// link recognizes "[label](target)". A single separator character between
// label and target is tolerated.
func (g *Grammar) link(s string, i int) (Match, bool) {
	q, end := i+1, g.limit(s, i)
	for q < end && s[q] != '[' && s[q] != ']' && !isLineTerminator(s[q]) {
		q++
	}
	if q == i+1 || q >= end || s[q] != ']' {
		return Match{}, false
	}
	label := Span{i + 1, q}
	q++
	if c := at(s, q); c != '(' {
		if c == 0 || c == '[' || c == ']' || isLineTerminator(c) {
			return Match{}, false
		}
		_, w := utf8.DecodeRuneInString(s[q:])
		q += w
		if at(s, q) != '(' {
			return Match{}, false
		}
	}
	t := q + 1
	q = t
	for q < end && s[q] != '(' && s[q] != ')' && !isLineTerminator(s[q]) {
		q++
	}
	if q == t || q >= end || s[q] != ')' {
		return Match{}, false
	}
	return Match{
		Form:  FormLink,
		Span:  Span{i, q + 1},
		Inner: label,
		Extra: Span{t, q},
	}, true
}

// image recognizes "![alt](details)". Alt text and details may be empty.
func (g *Grammar) image(s string, i int) (Match, bool) {
	if at(s, i+1) != '[' {
		return Match{}, false
	}
	q, end := i+2, g.limit(s, i)
	for q < end && s[q] != '[' && s[q] != ']' && !isLineTerminator(s[q]) {
		q++
	}
	if at(s, q) != ']' || at(s, q+1) != '(' {
		return Match{}, false
	}
	alt := Span{i + 2, q}
	t := q + 2
	q = t
	for q < end && s[q] != '(' && s[q] != ')' && !isLineTerminator(s[q]) {
		q++
	}
	if q >= end || s[q] != ')' {
		return Match{}, false
	}
	return Match{
		Form:  FormImage,
		Span:  Span{i, q + 1},
		Inner: alt,
		Extra: Span{t, q},
	}, true
}

// ImageDetails splits the parenthesized part of an image reference into URL
// and an optional quoted caption. If details do not have the expected
// structure, the first field is taken as the URL.
func (g *Grammar) ImageDetails(details string) (url string, caption string, hasCaption bool) {
	details = strings.TrimSpace(details)
	if m := g.imageDetails.FindStringSubmatchIndex(details); m != nil {
		url = details[m[2]:m[3]]
		if m[4] >= 0 {
			return url, details[m[4]:m[5]], true
		}
		return url, "", false
	}
	if f := strings.Fields(details); len(f) > 0 {
		return f[0], "", false
	}
	return "", "", false
}
