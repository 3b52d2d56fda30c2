package styled

import (
	"testing"

	"github.com/npillmayer/mdtree/input/markdown"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParaAdjacentEmphasis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.styled")
	defer teardown()
	//
	para, err := FromMarkdown("**a** *b*")
	require.NoError(t, err)
	assert.Equal(t, "a b", para.String())
	runs, err := para.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "a", runs[0].Text)
	assert.True(t, runs[0].StyleSet.Flags.Has(Bold))
	assert.Equal(t, uint64(0), runs[0].Position)
	assert.Equal(t, Set{}, runs[1].StyleSet)
	assert.Equal(t, uint64(2), runs[2].Position)
	assert.True(t, runs[2].StyleSet.Flags.Has(Italic))
	assert.False(t, runs[2].StyleSet.Flags.Has(Bold))
}

func TestParaNesting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.styled")
	defer teardown()
	//
	para, err := FromMarkdown("> - [l](http://x)")
	require.NoError(t, err)
	runs, err := para.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "l", runs[0].Text)
	set := runs[0].StyleSet
	assert.True(t, set.Flags.Has(Quote|ListItem|Link))
	assert.Equal(t, 1, set.QuoteDepth)
	assert.Equal(t, 1, set.ListDepth)
	assert.Equal(t, "http://x", set.Target)
	//
	para, err = FromMarkdown("3. third")
	require.NoError(t, err)
	runs, err = para.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.True(t, runs[0].StyleSet.Flags.Has(ListItem|Ordered))
	assert.Equal(t, "3.", runs[0].StyleSet.Order)
}

func TestParaPlaceholders(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.styled")
	defer teardown()
	//
	para, err := FromMarkdown("# T\n---\n![x](u)")
	require.NoError(t, err)
	assert.Equal(t, "T\n"+RuleText+"\n"+ImageText, para.String())
	runs, err := para.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 5)
	assert.Equal(t, 1, runs[0].StyleSet.Header)
	assert.True(t, runs[2].StyleSet.Flags.Has(Rule))
	assert.True(t, runs[4].StyleSet.Flags.Has(Image))
	assert.Equal(t, "u", runs[4].StyleSet.Target)
}

func TestParaCode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.styled")
	defer teardown()
	//
	para, err := FromMarkdown("`c`\n```\nb\n```")
	require.NoError(t, err)
	runs, err := para.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.True(t, runs[0].StyleSet.Flags.IsMonospace())
	assert.False(t, runs[1].StyleSet.Flags.IsMonospace())
	assert.True(t, runs[2].StyleSet.Flags.Has(BlockCode))
	assert.Equal(t, "b", runs[2].Text)
}

func TestParaEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.styled")
	defer teardown()
	//
	para, err := FromElements(nil)
	require.NoError(t, err)
	assert.Equal(t, "", para.String())
	runs, err := para.Runs()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestParaMatchesPlainText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.styled")
	defer teardown()
	//
	src := "**bold _and italic_ text** with ~~strike~~ and `code`"
	elements := markdown.Parse(src)
	para, err := FromElements(elements)
	require.NoError(t, err)
	assert.Equal(t, markdown.Reduce(elements), para.String())
}

func TestStyleSetString(t *testing.T) {
	assert.Equal(t, "bold|italic", (Bold | Italic).String())
	assert.Equal(t, "<bold h2>", Set{Flags: Bold, Header: 2}.String())
	assert.True(t, Set{Flags: Link, Target: "x"}.Equals(Set{Flags: Link, Target: "x"}))
	assert.False(t, Set{Flags: Link, Target: "x"}.Equals(Set{Flags: Link, Target: "y"}))
}
