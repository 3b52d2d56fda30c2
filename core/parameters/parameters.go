/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"strconv"
	"strings"
	"time"

	"github.com/npillmayer/mdtree/core"
	"github.com/npillmayer/schuko"
)

// MarkdownParameter is a key for a parameter of markdown processing.
type MarkdownParameter int

const (
	none MarkdownParameter = iota
	P_MAXDEPTH
	P_NORMALIZE
	P_PREVIEWWIDTH
	P_CACHEEXPIRY
	P_MAXSCAN
	P_STOPPER
)

var parameterNames = [...]string{
	"none",
	"P_MAXDEPTH",
	"P_NORMALIZE",
	"P_PREVIEWWIDTH",
	"P_CACHEEXPIRY",
	"P_MAXSCAN",
	"P_STOPPER",
}

func (p MarkdownParameter) String() string {
	if p < 0 || p > P_STOPPER {
		return "MarkdownParameter(" + strconv.Itoa(int(p)) + ")"
	}
	return parameterNames[p]
}

// Configuration keys for the parameters.
const (
	KeyMaxDepth     = "markdown.max-depth"
	KeyNormalize    = "markdown.normalize"
	KeyPreviewWidth = "markdown.preview-width"
	KeyCacheExpiry  = "markdown.cache-expiry"
	KeyMaxScan      = "markdown.max-scan"
)

// Default values for the parameters.
const (
	DefaultMaxDepth     = 32
	DefaultPreviewWidth = 120
	DefaultCacheExpiry  = 30 * time.Minute
	DefaultMaxScan      = 4096 // bytes searched for a closing delimiter
)

// ParameterGroup holds the parameters pushed within a group.
type ParameterGroup struct {
	params map[MarkdownParameter]interface{}
	level  int
	next   *ParameterGroup
}

// Registers holds markdown parameters. Values pushed within a group
// shadow base values until the group ends.
type Registers struct {
	base       [P_STOPPER]interface{}
	groups     *ParameterGroup
	grouplevel int
}

// ----------------------------------------------------------------------

// NewRegisters creates registers holding default values.
func NewRegisters() *Registers {
	regs := &Registers{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_MAXDEPTH] = DefaultMaxDepth         // nesting depth of re-scanned markup
	p[P_NORMALIZE] = false                  // NFC-normalize input before parsing
	p[P_PREVIEWWIDTH] = DefaultPreviewWidth // display width of previews
	p[P_CACHEEXPIRY] = DefaultCacheExpiry   // expiry of cached parse results
	p[P_MAXSCAN] = DefaultMaxScan           // reach of inline forms, 0 for unlimited
}

// FromConfig creates registers from default values, overwritten by the
// values set in conf. Malformed values result in an error with code
// core.ECONFIG; the registers returned will then hold defaults for these.
func FromConfig(conf schuko.Configuration) (*Registers, error) {
	regs := NewRegisters()
	if conf == nil {
		return regs, nil
	}
	var err error
	if v := strings.TrimSpace(conf.GetString(KeyMaxDepth)); v != "" {
		if n, e := strconv.Atoi(v); e != nil || n < 0 {
			err = core.WrapError(e, core.ECONFIG, "%s must be a non-negative integer, is %q", KeyMaxDepth, v)
		} else {
			regs.Push(P_MAXDEPTH, n)
		}
	}
	if v := strings.TrimSpace(conf.GetString(KeyNormalize)); v != "" {
		if b, e := strconv.ParseBool(v); e != nil {
			err = core.WrapError(e, core.ECONFIG, "%s must be a boolean, is %q", KeyNormalize, v)
		} else {
			regs.Push(P_NORMALIZE, b)
		}
	}
	if v := strings.TrimSpace(conf.GetString(KeyPreviewWidth)); v != "" {
		if n, e := strconv.Atoi(v); e != nil || n <= 0 {
			err = core.WrapError(e, core.ECONFIG, "%s must be a positive integer, is %q", KeyPreviewWidth, v)
		} else {
			regs.Push(P_PREVIEWWIDTH, n)
		}
	}
	if v := strings.TrimSpace(conf.GetString(KeyCacheExpiry)); v != "" {
		if d, e := time.ParseDuration(v); e != nil || d <= 0 {
			err = core.WrapError(e, core.ECONFIG, "%s must be a positive duration, is %q", KeyCacheExpiry, v)
		} else {
			regs.Push(P_CACHEEXPIRY, d)
		}
	}
	if v := strings.TrimSpace(conf.GetString(KeyMaxScan)); v != "" {
		if n, e := strconv.Atoi(v); e != nil || n < 0 {
			err = core.WrapError(e, core.ECONFIG, "%s must be a non-negative integer, is %q", KeyMaxScan, v)
		} else {
			regs.Push(P_MAXSCAN, n)
		}
	}
	return regs, err
}

// Begingroup opens a group. Parameters pushed from now on are dropped
// with the matching call to Endgroup.
func (regs *Registers) Begingroup() {
	regs.grouplevel++
}

// Endgroup closes the innermost group.
func (regs *Registers) Endgroup() {
	if regs.grouplevel == 0 {
		return
	}
	if regs.groups != nil && regs.groups.level == regs.grouplevel {
		regs.groups = regs.groups.next
	}
	regs.grouplevel--
}

// Level returns the current group nesting level.
func (regs *Registers) Level() int {
	return regs.grouplevel
}

// Push sets a parameter value in the current group, or as a base value
// if no group is open.
func (regs *Registers) Push(key MarkdownParameter, value interface{}) {
	checkKey(key)
	if regs.grouplevel == 0 {
		regs.base[key] = value
		return
	}
	g := regs.groups
	if g == nil || g.level < regs.grouplevel {
		g = &ParameterGroup{
			params: make(map[MarkdownParameter]interface{}),
			level:  regs.grouplevel,
			next:   regs.groups,
		}
		regs.groups = g
	}
	g.params[key] = value
}

// Get returns the innermost value set for key.
func (regs *Registers) Get(key MarkdownParameter) interface{} {
	checkKey(key)
	for g := regs.groups; g != nil; g = g.next {
		if value, ok := g.params[key]; ok {
			return value
		}
	}
	return regs.base[key]
}

// N returns an integer parameter.
func (regs *Registers) N(key MarkdownParameter) int {
	return regs.Get(key).(int)
}

// B returns a boolean parameter.
func (regs *Registers) B(key MarkdownParameter) bool {
	return regs.Get(key).(bool)
}

// Duration returns a duration parameter.
func (regs *Registers) Duration(key MarkdownParameter) time.Duration {
	return regs.Get(key).(time.Duration)
}

func checkKey(key MarkdownParameter) {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of markdown parameters")
	}
}
