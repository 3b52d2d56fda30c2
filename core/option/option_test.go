package option_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/mdtree/core/option"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestOptionMaybe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.core")
	defer teardown()
	//
	var y1, y2, y3 interface{}
	x := option.SomeString("tree")
	t.Logf("x = %v, x.T = %T, x.unwrap = %v", x, x, x.Unwrap())
	y1, _ = x.Match(option.Maybe{
		option.None: "none",
		option.Some: x.Unwrap() + "s",
	})
	//
	x = option.NoString()
	y2, _ = x.Match(option.Maybe{
		option.None: "No Value",
		option.Some: stringify,
	})
	//
	x = option.SomeString("leaf")
	y3, _ = x.Match(option.Maybe{
		option.None:  "No Value",
		option.Some:  nonsense,
		option.Error: stringify,
	})
	//
	t.Logf("y1 = %s, y2 = %s, y3 = %v", y1, y2, y3)
	if y1.(string) != "trees" {
		t.Errorf("expected SomeString(tree) to match to 'trees', is %v", y1)
	}
	if y2.(string) != "No Value" {
		t.Errorf("expected unset string to match to 'No Value', is %v", y2)
	}
	if y3 != "Value = leaf" {
		t.Errorf("expected SomeString(leaf) to recover to 'Value = leaf', is %v", y3)
	}
}

func TestOptionOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.core")
	defer teardown()
	//
	x := option.SomeString("cap")
	y1, err := x.Match(option.Of{
		option.None: 7,
		"cap":       99,
		option.Some: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if y1.(int) != 99 {
		t.Errorf("expected SomeString(cap) to match to 99, is %v", y1)
	}
	y2, _ := option.SomeString("other").Match(option.Of{
		"cap":       99,
		option.Some: 1,
	})
	if y2.(int) != 1 {
		t.Errorf("expected SomeString(other) to match Some, is %v", y2)
	}
}

func TestOptionEmptyIsNotNone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.core")
	defer teardown()
	//
	empty := option.SomeString("")
	if empty.IsNone() {
		t.Errorf("expected SomeString(\"\") to be set")
	}
	if v, ok := empty.Get(); !ok || v != "" {
		t.Errorf("expected Get() to return (\"\", true), is (%q, %v)", v, ok)
	}
	if !option.NoString().IsNone() {
		t.Errorf("expected NoString() to be unset")
	}
	if option.NoString().OrElse("dflt") != "dflt" {
		t.Errorf("expected OrElse of unset string to return default")
	}
	if !empty.Equals("") || option.NoString().Equals("") {
		t.Errorf("Equals does not distinguish unset from empty")
	}
}

func TestOptionUnmatched(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.core")
	defer teardown()
	//
	_, err := option.NoString().Match(option.Maybe{option.Some: 1})
	if !errors.Is(err, option.ErrCannotMatchUnsetValue) {
		t.Errorf("expected ErrCannotMatchUnsetValue, got %v", err)
	}
	_, err = option.SomeString("x").Match(option.Maybe{option.Some: boom})
	if !errors.Is(err, errBoom) {
		t.Errorf("expected error of Some choice to propagate, got %v", err)
	}
	_, err = option.Match(option.SomeString("x"), 42)
	if !errors.Is(err, option.ErrNoSuchMatchPattern) {
		t.Errorf("expected ErrNoSuchMatchPattern, got %v", err)
	}
}

var errBoom = errors.New("boom")

func boom(interface{}) (interface{}, error) {
	return nil, errBoom
}

func stringify(x interface{}) (interface{}, error) {
	return fmt.Sprintf("Value = %s", x.(option.String).Unwrap()), nil
}

func nonsense(x interface{}) (interface{}, error) {
	return nil, errors.New("nonsense")
}
