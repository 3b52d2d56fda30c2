package parameters

import (
	"testing"
	"time"

	"github.com/npillmayer/mdtree/core"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	regs := NewRegisters()
	assert.Equal(t, DefaultMaxDepth, regs.N(P_MAXDEPTH))
	assert.False(t, regs.B(P_NORMALIZE))
	assert.Equal(t, DefaultPreviewWidth, regs.N(P_PREVIEWWIDTH))
	assert.Equal(t, DefaultCacheExpiry, regs.Duration(P_CACHEEXPIRY))
	assert.Equal(t, DefaultMaxScan, regs.N(P_MAXSCAN))
}

func TestGroups(t *testing.T) {
	regs := NewRegisters()
	regs.Begingroup()
	regs.Push(P_MAXDEPTH, 2)
	regs.Begingroup()
	regs.Push(P_MAXDEPTH, 1)
	assert.Equal(t, 1, regs.N(P_MAXDEPTH))
	regs.Endgroup()
	assert.Equal(t, 2, regs.N(P_MAXDEPTH))
	regs.Endgroup()
	assert.Equal(t, DefaultMaxDepth, regs.N(P_MAXDEPTH))
	assert.Equal(t, 0, regs.Level())
	regs.Endgroup() // unbalanced, ignored
	assert.Equal(t, 0, regs.Level())
}

func TestEmptyGroup(t *testing.T) {
	regs := NewRegisters()
	regs.Begingroup()
	regs.Push(P_PREVIEWWIDTH, 10)
	regs.Begingroup() // nothing pushed here
	regs.Endgroup()
	assert.Equal(t, 10, regs.N(P_PREVIEWWIDTH))
	regs.Endgroup()
	assert.Equal(t, DefaultPreviewWidth, regs.N(P_PREVIEWWIDTH))
}

func TestFromConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.core")
	defer teardown()
	//
	conf := testconfig.Conf{
		KeyMaxDepth:     "4",
		KeyNormalize:    "true",
		KeyPreviewWidth: "40",
		KeyCacheExpiry:  "2m",
		KeyMaxScan:      "0",
	}
	regs, err := FromConfig(conf)
	require.NoError(t, err)
	assert.Equal(t, 4, regs.N(P_MAXDEPTH))
	assert.True(t, regs.B(P_NORMALIZE))
	assert.Equal(t, 40, regs.N(P_PREVIEWWIDTH))
	assert.Equal(t, 2*time.Minute, regs.Duration(P_CACHEEXPIRY))
	assert.Equal(t, 0, regs.N(P_MAXSCAN))
}

func TestFromConfigInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.core")
	defer teardown()
	//
	conf := testconfig.Conf{
		KeyMaxDepth: "deep",
	}
	regs, err := FromConfig(conf)
	require.Error(t, err)
	assert.Equal(t, core.ECONFIG, core.Code(err))
	assert.Contains(t, core.UserMessage(err), KeyMaxDepth)
	assert.Equal(t, DefaultMaxDepth, regs.N(P_MAXDEPTH))
}

func TestParameterString(t *testing.T) {
	assert.Equal(t, "P_MAXDEPTH", P_MAXDEPTH.String())
	assert.Equal(t, "MarkdownParameter(99)", MarkdownParameter(99).String())
}

func TestFromConfigNegativeScan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdtree.core")
	defer teardown()
	//
	regs, err := FromConfig(testconfig.Conf{KeyMaxScan: "-1"})
	assert.Equal(t, core.ECONFIG, core.Code(err))
	assert.Equal(t, DefaultMaxScan, regs.N(P_MAXSCAN))
}
