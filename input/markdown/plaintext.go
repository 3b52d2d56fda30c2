package markdown

import "strings"

// PlainText strips all markup from source, using the default parser.
func PlainText(source string) string {
	return defaultParser.PlainText(source)
}

// PlainText strips all markup from source. Elements without children
// contribute their text, containers the plain text of their children.
//
// For text free of markup, PlainText returns the text unchanged.
func (p *Parser) PlainText(source string) string {
	return Reduce(p.Parse(source))
}

// Reduce concatenates the plain text of already parsed elements.
func Reduce(elements []Element) string {
	var sb strings.Builder
	reduce(&sb, elements)
	return sb.String()
}

func reduce(sb *strings.Builder, elements []Element) {
	for _, e := range elements {
		if children := e.Elements(); len(children) > 0 {
			reduce(sb, children)
		} else {
			sb.WriteString(e.Content())
		}
	}
}
