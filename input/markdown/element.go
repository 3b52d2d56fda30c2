package markdown

import (
	"fmt"
	"strings"

	"github.com/npillmayer/mdtree/core/option"
)

// Kind is the tag of an element.
type Kind int8

// Element kinds
const (
	TextKind Kind = iota
	HeaderKind
	QuoteKind
	UnorderedListItemKind
	OrderedListItemKind
	ItalicKind
	BoldKind
	StrikeKind
	InlineCodeKind
	BlockCodeKind
	RuleKind
	LinkKind
	ImageKind
)

var kindNames = [...]string{
	"Text",
	"Header",
	"Quote",
	"UnorderedListItem",
	"OrderedListItem",
	"Italic",
	"Bold",
	"Strike",
	"InlineCode",
	"BlockCode",
	"Rule",
	"Link",
	"Image",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindNames[k]
}

// IsContainer is true for kinds whose text is re-scanned for nested markup.
func (k Kind) IsContainer() bool {
	switch k {
	case QuoteKind, UnorderedListItemKind, ItalicKind, BoldKind, StrikeKind:
		return true
	}
	return false
}

// Span is a range of byte positions [Start…End) of the parsed source.
type Span struct {
	Start, End int
}

// Len returns the number of bytes in s.
func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("[%d…%d)", s.Start, s.End)
}

// Element is a node of a parsed markdown tree.
//
// Content is the element's text with the markup delimiters removed. For
// container kinds it is the raw inner text before re-scanning; their
// Elements hold the result of the re-scan. For all other kinds Elements
// is empty.
//
// Position is the span of source text consumed by the element, delimiters
// included, in byte positions of the top-level input.
//
// The set of element types is closed; clients switch over the concrete types
// or over Kind.
type Element interface {
	Kind() Kind
	Content() string
	Elements() []Element
	Position() Span
	element()
}

// Text is a run of text without markup.
type Text struct {
	Pos  Span
	Text string
}

func (t *Text) Kind() Kind          { return TextKind }
func (t *Text) Content() string     { return t.Text }
func (t *Text) Elements() []Element { return nil }
func (t *Text) Position() Span      { return t.Pos }
func (t *Text) element()            {}

// Header is a line starting with 1 to 6 '#'.
type Header struct {
	Pos   Span
	Level int // 1…6
	Text  string
}

func (h *Header) Kind() Kind          { return HeaderKind }
func (h *Header) Content() string     { return h.Text }
func (h *Header) Elements() []Element { return nil }
func (h *Header) Position() Span      { return h.Pos }
func (h *Header) element()            {}

// Quote is a line starting with '>'.
type Quote struct {
	Pos      Span
	Text     string
	Children []Element
}

func (q *Quote) Kind() Kind          { return QuoteKind }
func (q *Quote) Content() string     { return q.Text }
func (q *Quote) Elements() []Element { return q.Children }
func (q *Quote) Position() Span      { return q.Pos }
func (q *Quote) element()            {}

// UnorderedListItem is a line starting with one of '-', '+' or '*'.
type UnorderedListItem struct {
	Pos      Span
	Text     string
	Children []Element
}

func (li *UnorderedListItem) Kind() Kind          { return UnorderedListItemKind }
func (li *UnorderedListItem) Content() string     { return li.Text }
func (li *UnorderedListItem) Elements() []Element { return li.Children }
func (li *UnorderedListItem) Position() Span      { return li.Pos }
func (li *UnorderedListItem) element()            {}

// OrderedListItem is a line starting with a number followed by a dot.
// Its text is not re-scanned.
type OrderedListItem struct {
	Pos   Span
	Order string // e.g. "3."
	Text  string
}

func (li *OrderedListItem) Kind() Kind          { return OrderedListItemKind }
func (li *OrderedListItem) Content() string     { return li.Text }
func (li *OrderedListItem) Elements() []Element { return nil }
func (li *OrderedListItem) Position() Span      { return li.Pos }
func (li *OrderedListItem) element()            {}

// Italic is text enclosed in single '*' or '_'.
type Italic struct {
	Pos      Span
	Text     string
	Children []Element
}

func (i *Italic) Kind() Kind          { return ItalicKind }
func (i *Italic) Content() string     { return i.Text }
func (i *Italic) Elements() []Element { return i.Children }
func (i *Italic) Position() Span      { return i.Pos }
func (i *Italic) element()            {}

// Bold is text enclosed in '**' or '__'.
type Bold struct {
	Pos      Span
	Text     string
	Children []Element
}

func (b *Bold) Kind() Kind          { return BoldKind }
func (b *Bold) Content() string     { return b.Text }
func (b *Bold) Elements() []Element { return b.Children }
func (b *Bold) Position() Span      { return b.Pos }
func (b *Bold) element()            {}

// Strike is text enclosed in '~~'.
type Strike struct {
	Pos      Span
	Text     string
	Children []Element
}

func (s *Strike) Kind() Kind          { return StrikeKind }
func (s *Strike) Content() string     { return s.Text }
func (s *Strike) Elements() []Element { return s.Children }
func (s *Strike) Position() Span      { return s.Pos }
func (s *Strike) element()            {}

// InlineCode is text enclosed in single backticks.
type InlineCode struct {
	Pos  Span
	Text string
}

func (c *InlineCode) Kind() Kind          { return InlineCodeKind }
func (c *InlineCode) Content() string     { return c.Text }
func (c *InlineCode) Elements() []Element { return nil }
func (c *InlineCode) Position() Span      { return c.Pos }
func (c *InlineCode) element()            {}

// BlockCode is a fenced code block. Its text excludes the fences.
type BlockCode struct {
	Pos  Span
	Text string
}

func (c *BlockCode) Kind() Kind          { return BlockCodeKind }
func (c *BlockCode) Content() string     { return c.Text }
func (c *BlockCode) Elements() []Element { return nil }
func (c *BlockCode) Position() Span      { return c.Pos }
func (c *BlockCode) element()            {}

// Rule is a horizontal rule. It has no text.
type Rule struct {
	Pos Span
}

func (r *Rule) Kind() Kind          { return RuleKind }
func (r *Rule) Content() string     { return "" }
func (r *Rule) Elements() []Element { return nil }
func (r *Rule) Position() Span      { return r.Pos }
func (r *Rule) element()            {}

// Link is a labeled reference `[label](target)`. Its text is the label.
type Link struct {
	Pos    Span
	Target string
	Text   string
}

func (l *Link) Kind() Kind          { return LinkKind }
func (l *Link) Content() string     { return l.Text }
func (l *Link) Elements() []Element { return nil }
func (l *Link) Position() Span      { return l.Pos }
func (l *Link) element()            {}

// Image is an image reference `![alt](url "caption")`.
// Its text is the caption, or empty if there is none.
type Image struct {
	Pos     Span
	URL     string
	Alt     option.String
	Caption option.String
}

func (img *Image) Kind() Kind          { return ImageKind }
func (img *Image) Content() string     { return img.Caption.Unwrap() }
func (img *Image) Elements() []Element { return nil }
func (img *Image) Position() Span      { return img.Pos }
func (img *Image) element()            {}

// interface check
var _ = []Element{
	&Text{}, &Header{}, &Quote{}, &UnorderedListItem{}, &OrderedListItem{},
	&Italic{}, &Bold{}, &Strike{}, &InlineCode{}, &BlockCode{}, &Rule{},
	&Link{}, &Image{},
}

// Dump returns a one-line-per-element, indented representation of a tree.
// It is intended for debugging and testing.
func Dump(elements []Element) string {
	var sb strings.Builder
	Walk(elements, func(e Element, depth int) WalkResult {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(e.Kind().String())
		switch x := e.(type) {
		case *Header:
			fmt.Fprintf(&sb, "(%d)", x.Level)
		case *OrderedListItem:
			fmt.Fprintf(&sb, "(%s)", x.Order)
		case *Link:
			fmt.Fprintf(&sb, "(%s)", x.Target)
		case *Image:
			fmt.Fprintf(&sb, "(%s, alt=%v)", x.URL, x.Alt)
		}
		fmt.Fprintf(&sb, " %q\n", e.Content())
		return WalkContinue
	})
	return sb.String()
}
