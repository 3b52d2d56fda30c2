/*
Command mdserve is a small HTTP service converting markdown.

Usage:

	mdserve [-addr :8080] [-trace Info] [-depth 32] [-width 120] [-scan 4096] [-expiry 30m]

Endpoints, all taking a JSON body {"source": "..."}:

	POST /api/markdown/parse     element tree
	POST /api/markdown/plain     plain text
	POST /api/markdown/preview   single-line preview, optional "width"
	GET  /api/markdown/stats     cache statistics
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/npillmayer/mdtree/core"
	"github.com/npillmayer/mdtree/core/parameters"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// tracer traces with key 'mdtree.serve'
func tracer() tracing.Trace {
	return tracing.Select("mdtree.serve")
}

func main() {
	addr := flag.String("addr", ":8080", "Address to listen on")
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	depth := flag.Int("depth", parameters.DefaultMaxDepth, "Maximum nesting depth")
	width := flag.Int("width", parameters.DefaultPreviewWidth, "Default display width of previews")
	expiry := flag.Duration("expiry", parameters.DefaultCacheExpiry, "Expiry time of cached parse results")
	normalize := flag.Bool("normalize", false, "NFC-normalize input")
	scan := flag.Int("scan", parameters.DefaultMaxScan, "Maximum length of inline markup, 0 for no limit")
	flag.Parse()

	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":          "go",
		"trace.mdtree.serve":       *tlevel,
		"trace.mdtree.markdown":    *tlevel,
		"trace.mdtree.cache":       *tlevel,
		parameters.KeyMaxDepth:     strconv.Itoa(*depth),
		parameters.KeyNormalize:    strconv.FormatBool(*normalize),
		parameters.KeyPreviewWidth: strconv.Itoa(*width),
		parameters.KeyMaxScan:      strconv.Itoa(*scan),
		parameters.KeyCacheExpiry:  expiry.String(),
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	regs, err := parameters.FromConfig(conf)
	if err != nil {
		os.Exit(core.UserError(err))
	}
	if err := New(*addr, regs).Run(); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(1)
	}
}
