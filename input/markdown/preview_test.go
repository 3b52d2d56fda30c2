package markdown

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestPreview(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	for i, x := range []struct {
		input   string
		width   int
		preview string
	}{
		{"# Hello\n\nworld", 80, "Hello world"},
		{"**abcdef** ghij", 8, "abcdef…"},
		{"abc", 3, "abc"},
		{"abcd", 3, "ab…"},
		{"abcd", 1, "…"},
		{"abcd", 0, ""},
		{"", 10, ""},
		{"- one\n- two\n- three", 12, "one two thr…"},
	} {
		assert.Equal(t, x.preview, Preview(x.input, x.width), "test %d: %q", i, x.input)
	}
}

func TestPreviewWideCharacters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	assert.Equal(t, 6, DisplayWidth("日本語"))
	assert.Equal(t, 3, DisplayWidth("abc"))
	p := Preview("日本語です", 5)
	assert.Equal(t, "日本…", p)
	assert.LessOrEqual(t, DisplayWidth(p), 5)
}

func TestPreviewTextKeepsMarkupCharacters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.markdown")
	defer teardown()
	//
	plain := PlainText("use `*p*` here")
	assert.Equal(t, "use *p* here", plain)
	assert.Equal(t, "use *p* here", PreviewText(plain, 40))
	assert.Equal(t, "use p here", Preview(plain, 40))
}
