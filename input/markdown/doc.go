/*
Package markdown converts markdown text into a tree of elements.

The parser is deliberately lightweight. It recognizes a fixed set of
syntactic forms, list items, headers, quotes, emphasis, strike-through,
horizontal rules, inline and fenced code, links and images, and
decomposes the input into a sequence of elements. Forms which may contain
inline markup (quotes, unordered list items, italic, bold and strike) are
re-scanned, producing child elements.

	elements := markdown.Parse("**bold _and italic_ text**")
	// → Bold("bold _and italic_ text") with children
	//      Text("bold "), Italic("and italic"), Text(" text")

The decomposition is lossless: every element records the span of source
text it consumed, and sibling spans are contiguous. Text which is not
recognized as markup, including malformed markup, ends up in Text
elements. Parsing never fails.

PlainText reduces markdown to the text without any markup, Preview
additionally folds lines and truncates to a display width.

A Parser holds no mutable state. The grammar is built once and shared,
and parsers may be used concurrently.

Markdown EBNF Grammar references:

	https://github.github.com/gfm/
	https://www.markdownguide.org/basic-syntax

*/
package markdown

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdtree.markdown'.
func tracer() tracing.Trace {
	return tracing.Select("mdtree.markdown")
}
