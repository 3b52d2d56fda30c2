package styled

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cords"
	sty "github.com/npillmayer/cords/styled"
	"github.com/npillmayer/mdtree/core"
	"github.com/npillmayer/mdtree/input/markdown"
)

// Placeholder texts for elements without text of their own.
const (
	RuleText  = "\n"
	ImageText = "\ufffc" // object replacement character
)

// Paragraph represents a styled paragraph of text, from markdown elements.
type Paragraph struct {
	*sty.Text
}

// FromElements creates a Paragraph holding the plain text of elements as a
// styled text. Apart from placeholders, the raw text of the paragraph equals
// markdown.Reduce(elements).
func FromElements(elements []markdown.Element) (*Paragraph, error) {
	b := sty.NewTextBuilder()
	n, err := collectText(elements, b, Set{})
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return &Paragraph{Text: sty.TextFromString("")}, nil
	}
	return &Paragraph{Text: b.Text()}, nil
}

// FromMarkdown parses source with the default parser and creates a Paragraph.
func FromMarkdown(source string) (*Paragraph, error) {
	return FromElements(markdown.Parse(source))
}

// collectText appends a leaf for every childless element, returning the number
// of leaves appended.
func collectText(elements []markdown.Element, b *sty.TextBuilder, set Set) (int, error) {
	cnt := 0
	for _, e := range elements {
		s, err := styleFor(e, set)
		if err != nil {
			return cnt, err
		}
		if children := e.Elements(); len(children) > 0 {
			n, err := collectText(children, b, s)
			cnt += n
			if err != nil {
				return cnt, err
			}
			continue
		}
		content := e.Content()
		switch e.Kind() {
		case markdown.RuleKind:
			content = RuleText
		case markdown.ImageKind:
			if content == "" {
				content = ImageText
			}
		}
		if content == "" {
			continue
		}
		leaf := &pLeaf{kind: e.Kind(), content: content}
		tracer().Debugf("styled run %s with %v", leaf.dbgString(), s)
		b.Append(leaf, s)
		cnt++
	}
	return cnt, nil
}

// styleFor derives the style set for element e, enclosed in a run of style set.
func styleFor(e markdown.Element, set Set) (Set, error) {
	switch x := e.(type) {
	case *markdown.Text:
	case *markdown.Header:
		set.Header = x.Level
	case *markdown.Quote:
		set.Flags |= Quote
		set.QuoteDepth++
	case *markdown.UnorderedListItem:
		set.Flags |= ListItem
		set.ListDepth++
	case *markdown.OrderedListItem:
		set.Flags |= ListItem | Ordered
		set.ListDepth++
		set.Order = x.Order
	case *markdown.Italic:
		set.Flags |= Italic
	case *markdown.Bold:
		set.Flags |= Bold
	case *markdown.Strike:
		set.Flags |= Strike
	case *markdown.InlineCode:
		set.Flags |= InlineCode
	case *markdown.BlockCode:
		set.Flags |= BlockCode
	case *markdown.Rule:
		set.Flags |= Rule
	case *markdown.Link:
		set.Flags |= Link
		set.Target = x.Target
	case *markdown.Image:
		set.Flags |= Image
		set.Target = x.URL
	default:
		return set, core.Error(core.EINTERNAL, "cannot style markdown element of kind %s", e.Kind())
	}
	return set, nil
}

// ForEachStyleRun applies a function to each run of the same style set
// for a paragraph's text.
func (p *Paragraph) ForEachStyleRun(f func(run Run) error) error {
	if p.Text == nil || p.Text.Raw().IsVoid() {
		return nil
	}
	err := p.Text.EachStyleRun(func(content string, style sty.Style, pos uint64) error {
		r := Run{
			Text:     content,
			Position: pos,
		}
		set, ok := style.(Set)
		if !ok {
			tracer().Errorf("paragraph each style: style is not a markdown style set")
			return cords.ErrIllegalArguments
		}
		r.StyleSet = set
		return f(r)
	})
	return err
}

// Runs returns all style runs of a paragraph.
func (p *Paragraph) Runs() ([]Run, error) {
	var runs []Run
	err := p.ForEachStyleRun(func(run Run) error {
		runs = append(runs, run)
		return nil
	})
	return runs, err
}

// String returns the raw text of a paragraph.
func (p *Paragraph) String() string {
	if p.Text == nil {
		return ""
	}
	return p.Text.Raw().String()
}

// Run is a simple container type to hold a run of text with equal style.
type Run struct {
	Text     string
	Position uint64
	StyleSet Set
}

// Len is a shortcut for len(r.Text)
func (r Run) Len() uint64 {
	return uint64(len(r.Text))
}

func (r Run) String() string {
	return fmt.Sprintf("%d:%q%v", r.Position, r.Text, r.StyleSet)
}

// ---------------------------------------------------------------------------

// pLeaf is the leaf type for cords from a paragraph of text.
// Not intended for client usage.
type pLeaf struct {
	kind    markdown.Kind
	content string
}

// Weight is part of interface cords.Leaf.
// Not intended for client usage.
func (l pLeaf) Weight() uint64 {
	return uint64(len(l.content))
}

// String is part of interface cords.Leaf.
// Not intended for client usage.
func (l pLeaf) String() string {
	return l.content
}

// Split is part of interface cords.Leaf.
// Not intended for client usage.
func (l pLeaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	left := &pLeaf{
		kind:    l.kind,
		content: l.content[:i],
	}
	right := &pLeaf{
		kind:    l.kind,
		content: l.content[i:],
	}
	return left, right
}

// Substring is part of interface cords.Leaf.
// Not intended for client usage.
func (l pLeaf) Substring(i, j uint64) []byte {
	return []byte(l.content)[i:j]
}

var _ cords.Leaf = pLeaf{}

func (l pLeaf) dbgString() string {
	cont := strings.Replace(l.String(), "\n", "_", -1)
	return fmt.Sprintf("{<%s> \"%s\"}", l.kind, cont)
}
