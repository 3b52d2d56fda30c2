package main

import (
	"github.com/npillmayer/mdtree/core/option"
	"github.com/npillmayer/mdtree/input/markdown"
)

// MarkdownRequest is the request body of all markdown endpoints.
type MarkdownRequest struct {
	Source string `json:"source"`
	Width  int    `json:"width,omitempty"` // preview only
}

// ElementResponse is the JSON form of a markdown element.
type ElementResponse struct {
	Kind     string            `json:"kind"`
	Text     string            `json:"text"`
	Span     [2]int            `json:"span"`
	Level    int               `json:"level,omitempty"`
	Order    string            `json:"order,omitempty"`
	Target   string            `json:"target,omitempty"`
	URL      string            `json:"url,omitempty"`
	Alt      *string           `json:"alt,omitempty"`
	Caption  *string           `json:"caption,omitempty"`
	Children []ElementResponse `json:"children,omitempty"`
}

// ParseResponse carries the element tree of a source text.
type ParseResponse struct {
	Elements []ElementResponse `json:"elements"`
}

// TextResponse carries the result of plain text reduction or previewing.
type TextResponse struct {
	Text  string `json:"text"`
	Width int    `json:"width,omitempty"`
}

// ToElementResponses maps elements to their JSON form.
func ToElementResponses(elements []markdown.Element) []ElementResponse {
	res := make([]ElementResponse, 0, len(elements))
	for _, e := range elements {
		res = append(res, toElementResponse(e))
	}
	return res
}

func toElementResponse(e markdown.Element) ElementResponse {
	pos := e.Position()
	r := ElementResponse{
		Kind: e.Kind().String(),
		Text: e.Content(),
		Span: [2]int{pos.Start, pos.End},
	}
	switch x := e.(type) {
	case *markdown.Header:
		r.Level = x.Level
	case *markdown.OrderedListItem:
		r.Order = x.Order
	case *markdown.Link:
		r.Target = x.Target
	case *markdown.Image:
		r.URL = x.URL
		r.Alt = optionalString(x.Alt)
		r.Caption = optionalString(x.Caption)
	}
	if children := e.Elements(); len(children) > 0 {
		r.Children = ToElementResponses(children)
	}
	return r
}

// optionalString maps an unset option to a nil pointer, which is omitted in
// JSON output.
func optionalString(o option.String) *string {
	v, _ := o.Match(option.Maybe{
		option.None: (*string)(nil),
		option.Some: func(x interface{}) (interface{}, error) {
			s := x.(option.String).Unwrap()
			return &s, nil
		},
	})
	return v.(*string)
}
