package markdown

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// WalkResult tells Walk how to continue after visiting an element.
type WalkResult int8

// Results of a walker function
const (
	WalkContinue WalkResult = iota // descend into children, then continue with siblings
	WalkSkip                       // do not descend into children
	WalkStop                       // stop walking
)

// WalkFunc is called for every element visited by Walk. depth is 0 for
// the elements passed to Walk.
type WalkFunc func(e Element, depth int) WalkResult

type visit struct {
	e     Element
	depth int
}

// Walk visits elements and their children in pre-order, i.e. in the order
// of their source positions. It returns false if fn stopped the walk.
func Walk(elements []Element, fn WalkFunc) bool {
	stack := arraystack.New()
	pushReversed(stack, elements, 0)
	for !stack.Empty() {
		top, _ := stack.Pop()
		v := top.(visit)
		switch fn(v.e, v.depth) {
		case WalkStop:
			return false
		case WalkSkip:
			continue
		}
		pushReversed(stack, v.e.Elements(), v.depth+1)
	}
	return true
}

func pushReversed(stack *arraystack.Stack, elements []Element, depth int) {
	for i := len(elements) - 1; i >= 0; i-- {
		stack.Push(visit{e: elements[i], depth: depth})
	}
}

// Query collects all elements of type E, in pre-order.
//
//	links := markdown.Query[*markdown.Link](elements)
func Query[E Element](elements []Element) []E {
	var result []E
	Walk(elements, func(e Element, _ int) WalkResult {
		if x, ok := e.(E); ok {
			result = append(result, x)
		}
		return WalkContinue
	})
	return result
}

// Source returns the source text consumed by e. src has to be the text the
// element was parsed from, after preparation by the parser (see
// Parser.Prepare).
func Source(src string, e Element) string {
	pos := e.Position()
	if pos.Start < 0 || pos.End > len(src) || pos.Start > pos.End {
		return ""
	}
	return src[pos.Start:pos.End]
}
