package option

import (
	"errors"
	"strconv"
)

var ErrNoSuchMatchPattern = errors.New("no such match pattern")
var ErrCannotMatchUnsetValue = errors.New("cannot match unset value")
var ErrCannotMatchValue = errors.New("cannot match value")

// MaybeOption is the kind of a match label.
type MaybeOption int

const (
	None MaybeOption = iota
	Some
	Error
)

// Maybe is a set of choices keyed by None, Some or Error.
// It matches `Some` if a value is set and `None` if it is unset. `Error` is
// chosen if evaluating the other choice fails.
type Maybe map[MaybeOption]interface{}

// Of is a set of choices which are tried against concrete values first.
// If no concrete value matches, `Some`, `None` and `Error` apply as for Maybe.
type Of map[interface{}]interface{}

// Type is implemented by optional values.
type Type interface {
	Match(choices interface{}) (interface{}, error)
	Equals(other interface{}) bool
	IsNone() bool
}

// Match matches o against choices, which must be either of type Maybe or Of.
// Choice values may be plain values or functions of type
//
//	func(interface{}) (interface{}, error)
//	func(interface{}, MaybeOption) (interface{}, error)
//
// which are called with o.
func Match(o Type, choices interface{}) (value interface{}, err error) {
	switch c := choices.(type) {
	case Of:
		return c.Match(o)
	case Maybe:
		return c.Match(o)
	}
	return nil, ErrNoSuchMatchPattern
}

// Match matches o against concrete values first, then against `Some`.
func (of Of) Match(o Type) (value interface{}, err error) {
	if o.IsNone() {
		return matchNone(of[None], of[Error], o)
	}
	for k, expr := range of {
		if _, isLabel := k.(MaybeOption); isLabel {
			continue
		}
		if o.Equals(k) {
			tracer().Debugf("option %v matched concrete choice", o)
			value, err = valueOrExpr(expr, o, Some)
			return recoverWith(value, err, of[Error], o)
		}
	}
	if expr, ok := of[Some]; ok {
		value, err = valueOrExpr(expr, o, Some)
		return recoverWith(value, err, of[Error], o)
	}
	return recoverWith(nil, ErrCannotMatchValue, of[Error], o)
}

// Match matches o against `None` or `Some`.
func (maybe Maybe) Match(o Type) (value interface{}, err error) {
	if o.IsNone() {
		return matchNone(maybe[None], maybe[Error], o)
	}
	expr, ok := maybe[Some]
	if !ok {
		return recoverWith(nil, ErrCannotMatchValue, maybe[Error], o)
	}
	value, err = valueOrExpr(expr, o, Some)
	return recoverWith(value, err, maybe[Error], o)
}

func matchNone(none, onError interface{}, o Type) (interface{}, error) {
	if none == nil {
		return recoverWith(nil, ErrCannotMatchUnsetValue, onError, o)
	}
	value, err := valueOrExpr(none, o, None)
	return recoverWith(value, err, onError, o)
}

func recoverWith(value interface{}, err error, onError interface{}, o Type) (interface{}, error) {
	if err == nil || onError == nil {
		return value, err
	}
	tracer().Debugf("option %v: %v, trying error choice", o, err)
	return valueOrExpr(onError, o, Error)
}

func valueOrExpr(op interface{}, value Type, t MaybeOption) (interface{}, error) {
	switch x := op.(type) {
	case func(interface{}, MaybeOption) (interface{}, error):
		return x(value, t)
	case func(interface{}) (interface{}, error):
		return x(value)
	}
	return op, nil
}

// --- String ----------------------------------------------------------------

// String is an optional string. The zero value is unset.
// An empty string may be set and is different from an unset String.
type String struct {
	s  string
	ok bool
}

// SomeString creates an optional string with value s.
func SomeString(s string) String {
	return String{s: s, ok: true}
}

// NoString creates an unset optional string.
func NoString() String {
	return String{}
}

// Match matches o against choices, see Match.
func (o String) Match(choices interface{}) (interface{}, error) {
	return Match(o, choices)
}

// Equals is true if o is set and equal to other, which must be a string
// or a String.
func (o String) Equals(other interface{}) bool {
	switch x := other.(type) {
	case string:
		return o.ok && o.s == x
	case String:
		return o == x
	}
	return false
}

// IsNone returns true if o is unset.
func (o String) IsNone() bool {
	return !o.ok
}

// Get returns the value of o and whether it is set.
func (o String) Get() (string, bool) {
	return o.s, o.ok
}

// Unwrap returns the value of o, or "" if it is unset.
func (o String) Unwrap() string {
	return o.s
}

// OrElse returns the value of o, or dflt if it is unset.
func (o String) OrElse(dflt string) string {
	if !o.ok {
		return dflt
	}
	return o.s
}

func (o String) String() string {
	if !o.ok {
		return "String.None"
	}
	return strconv.Quote(o.s)
}

var _ Type = String{}
