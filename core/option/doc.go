/*
Package option implements optional values which may be matched against
a set of choices.

Markdown elements carry some payload which may legitimately be absent, e.g.
an image without alternative text. Instead of using pointers or sentinel
values, such fields are of an option type. Clients either unwrap them
directly or match them:

	alt, _ := img.Alt.Match(option.Maybe{
	    option.None: "(no description)",
	    option.Some: func(v interface{}) (interface{}, error) { ... },
	})
*/
package option

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdtree.core'.
func tracer() tracing.Trace {
	return tracing.Select("mdtree.core")
}
