package markdown

import (
	"github.com/npillmayer/mdtree/core/option"
	"github.com/npillmayer/mdtree/core/parameters"
	"golang.org/x/text/unicode/norm"
)

// Parser converts markdown text to elements. A Parser holds no mutable state
// and is safe for concurrent use.
type Parser struct {
	grammar   *Grammar
	maxDepth  int  // maximum nesting depth of re-scanned containers
	normalize bool // normalize input to NFC before parsing
}

// Option configures a parser.
type Option func(*Parser)

// WithMaxDepth sets the maximum nesting depth. Containers at depth n are
// re-scanned only if n < depth; beyond that they keep their text but do not
// carry children. Top-level elements are at depth 0.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		if depth < 0 {
			depth = 0
		}
		p.maxDepth = depth
	}
}

// WithNormalization switches NFC normalization of input on or off.
func WithNormalization(nfc bool) Option {
	return func(p *Parser) {
		p.normalize = nfc
	}
}

// WithGrammar lets a parser use grammar g instead of the shared default grammar.
func WithGrammar(g *Grammar) Option {
	return func(p *Parser) {
		if g != nil {
			p.grammar = g
		}
	}
}

var defaultGrammar = NewGrammar()

var defaultParser = NewParser()

// NewParser creates a parser using the shared default grammar.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		grammar:  defaultGrammar,
		maxDepth: parameters.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FromRegisters creates a parser from markdown parameters.
func FromRegisters(regs *parameters.Registers) *Parser {
	if regs == nil {
		return NewParser()
	}
	opts := []Option{
		WithMaxDepth(regs.N(parameters.P_MAXDEPTH)),
		WithNormalization(regs.B(parameters.P_NORMALIZE)),
	}
	if n := regs.N(parameters.P_MAXSCAN); n != defaultGrammar.ScanLimit() {
		opts = append(opts, WithGrammar(NewGrammar(WithScanLimit(n))))
	}
	return NewParser(opts...)
}

// Default returns the parser used by the package level functions.
func Default() *Parser {
	return defaultParser
}

// Grammar returns the grammar p is using.
func (p *Parser) Grammar() *Grammar {
	return p.grammar
}

// MaxDepth returns the maximum nesting depth of p.
func (p *Parser) MaxDepth() int {
	return p.maxDepth
}

// Prepare returns the text which p will actually scan for source. Spans of
// elements refer to positions of this text. Without normalization, this is
// source itself.
func (p *Parser) Prepare(source string) string {
	if p.normalize && !norm.NFC.IsNormalString(source) {
		return norm.NFC.String(source)
	}
	return source
}

// Parse splits markdown source into a sequence of elements, using the default
// parser.
func Parse(source string) []Element {
	return defaultParser.Parse(source)
}

// Parse splits markdown source into a sequence of elements. Parse never fails:
// text without recognizable markup results in Text elements.
func (p *Parser) Parse(source string) []Element {
	source = p.Prepare(source)
	tracer().Debugf("parse markdown of length %d", len(source))
	return p.parse(source, 0, 0)
}

// parse scans s from left to right. base is the position of s within the
// top-level input.
func (p *Parser) parse(s string, base, depth int) []Element {
	var elements []Element
	cursor := 0
	for cursor < len(s) {
		m, ok := p.grammar.Next(s, cursor)
		if !ok {
			break
		}
		if m.Span.End <= cursor || m.Span.Start < cursor {
			tracer().Errorf("markdown: recognizer for %s returned empty span at %d", m.Form, base+cursor)
			break
		}
		if m.Span.Start > cursor {
			elements = append(elements, &Text{
				Pos:  Span{base + cursor, base + m.Span.Start},
				Text: s[cursor:m.Span.Start],
			})
		}
		tracer().Debugf("%*s%s at %d", 2*depth, "", m.Form, base+m.Span.Start)
		elements = append(elements, p.build(s, m, base, depth))
		cursor = m.Span.End
	}
	if cursor < len(s) {
		elements = append(elements, &Text{
			Pos:  Span{base + cursor, base + len(s)},
			Text: s[cursor:],
		})
	}
	return elements
}

// build creates the element for match m.
func (p *Parser) build(s string, m Match, base, depth int) Element {
	pos := Span{base + m.Span.Start, base + m.Span.End}
	text := substr(s, m.Inner)
	switch m.Form {
	case FormUnorderedListItem:
		return &UnorderedListItem{Pos: pos, Text: text, Children: p.nested(text, m, base, depth)}
	case FormHeader:
		level := m.Level
		if level < 1 || level > 6 {
			tracer().Errorf("markdown: header level %d out of range at %d", level, pos.Start)
			level = 1
		}
		return &Header{Pos: pos, Level: level, Text: text}
	case FormQuote:
		return &Quote{Pos: pos, Text: text, Children: p.nested(text, m, base, depth)}
	case FormItalic:
		return &Italic{Pos: pos, Text: text, Children: p.nested(text, m, base, depth)}
	case FormBold:
		return &Bold{Pos: pos, Text: text, Children: p.nested(text, m, base, depth)}
	case FormStrike:
		return &Strike{Pos: pos, Text: text, Children: p.nested(text, m, base, depth)}
	case FormRule:
		return &Rule{Pos: pos}
	case FormInlineCode:
		return &InlineCode{Pos: pos, Text: text}
	case FormLink:
		return &Link{Pos: pos, Text: text, Target: substr(s, m.Extra)}
	case FormOrderedListItem:
		return &OrderedListItem{Pos: pos, Order: substr(s, m.Extra), Text: text}
	case FormImage:
		img := &Image{Pos: pos, Alt: option.NoString(), Caption: option.NoString()}
		if text != "" {
			img.Alt = option.SomeString(text)
		}
		url, caption, ok := p.grammar.ImageDetails(substr(s, m.Extra))
		img.URL = url
		if ok {
			img.Caption = option.SomeString(caption)
		}
		return img
	case FormBlockCode:
		return &BlockCode{Pos: pos, Text: text}
	}
	tracer().Errorf("markdown: unknown form %s at %d", m.Form, pos.Start)
	return &Text{Pos: pos, Text: substr(s, m.Span)}
}

// nested re-scans the inner text of a container match.
func (p *Parser) nested(text string, m Match, base, depth int) []Element {
	if depth >= p.maxDepth {
		tracer().Infof("markdown: nesting depth %d reached at %d", p.maxDepth, base+m.Span.Start)
		return nil
	}
	return p.parse(text, base+m.Inner.Start, depth+1)
}

// substr returns the text of span sp in s, or "" for an invalid span.
func substr(s string, sp Span) string {
	if sp.Start < 0 || sp.End > len(s) || sp.Start > sp.End {
		tracer().Errorf("markdown: invalid span %v for text of length %d", sp, len(s))
		return ""
	}
	return s[sp.Start:sp.End]
}
