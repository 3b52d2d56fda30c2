package styled

import (
	"fmt"
	"strings"

	sty "github.com/npillmayer/cords/styled"
)

// Flags is a set of boolean presentation attributes.
type Flags uint16

// Presentation attributes of a run of text
const (
	Bold Flags = 1 << iota
	Italic
	Strike
	InlineCode
	BlockCode
	Rule
	Link
	Image
	Quote
	ListItem
	Ordered
)

var flagNames = [...]string{
	"bold", "italic", "strike", "code", "block-code", "rule",
	"link", "image", "quote", "list-item", "ordered",
}

// Has is true if all of fl are set.
func (f Flags) Has(fl Flags) bool {
	return f&fl == fl
}

// IsMonospace is true for code.
func (f Flags) IsMonospace() bool {
	return f&(InlineCode|BlockCode) != 0
}

func (f Flags) String() string {
	var names []string
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// Set is a type to hold presentation attributes for runs of text of a Paragraph.
// Sets are comparable; two runs share a style if their sets are equal.
type Set struct {
	Flags      Flags
	Header     int    // header level 1…6, 0 for normal text
	QuoteDepth int    // number of enclosing quotes
	ListDepth  int    // number of enclosing list items
	Order      string // order label of an enclosing ordered list item
	Target     string // link target or image URL
}

// String is part of interface cords.styled.Style.
func (set Set) String() string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(set.Flags.String())
	if set.Header > 0 {
		fmt.Fprintf(&sb, " h%d", set.Header)
	}
	if set.QuoteDepth > 0 {
		fmt.Fprintf(&sb, " quote=%d", set.QuoteDepth)
	}
	if set.ListDepth > 0 {
		fmt.Fprintf(&sb, " list=%d", set.ListDepth)
	}
	if set.Order != "" {
		fmt.Fprintf(&sb, " order=%s", set.Order)
	}
	if set.Target != "" {
		fmt.Fprintf(&sb, " target=%s", set.Target)
	}
	sb.WriteString(">")
	return sb.String()
}

// Equals is part of interface cords.styled.Style, not intended for client usage.
func (set Set) Equals(other sty.Style) bool {
	if o, ok := other.(Set); ok {
		return o == set
	}
	return false
}

var _ sty.Style = Set{}
