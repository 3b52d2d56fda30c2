/*
Package styled creates styled paragraphs from markdown elements.

A paragraph is the plain text of a markdown element tree, held in a styled
text cord. Each run of text carries a style Set of presentation attributes
derived from the elements enclosing it: emphasis, code, header level, quote
and list nesting, link targets and image URLs. Renderers iterate over the
style runs and map the attributes to fonts, indentation, colors and
clickable regions.

Horizontal rules and images without caption do not have any text. To not
lose them, they are represented by placeholder runs, see RuleText and
ImageText.
*/
package styled

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdtree.styled'.
func tracer() tracing.Trace {
	return tracing.Select("mdtree.styled")
}
