/*
Command mdcli is an interactive tool to inspect markdown parse trees.

Usage:

	mdcli [-trace Info] [-depth 32] [-width 80] [-scan 4096] [-normalize] [-file article.md]

Enter markdown after a command word, e.g.

	md > parse **bold _and italic_ text**
	md > plain - item *one*\n- item two

A literal `\n` in the input stands for a line break. Without input, commands
operate on the text loaded with 'load:<file>' or flag -file.
Quit with <ctrl>D.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/chzyer/readline"
	"github.com/npillmayer/mdtree/core"
	"github.com/npillmayer/mdtree/core/parameters"
	"github.com/npillmayer/mdtree/input/markdown"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'mdtree.cli'
func tracer() tracing.Trace {
	return tracing.Select("mdtree.cli")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	depth := flag.Int("depth", parameters.DefaultMaxDepth, "Maximum nesting depth")
	width := flag.Int("width", 80, "Display width of previews")
	normalize := flag.Bool("normalize", false, "NFC-normalize input")
	scan := flag.Int("scan", parameters.DefaultMaxScan, "Maximum length of inline markup, 0 for no limit")
	filename := flag.String("file", "", "Markdown file to load")
	flag.Parse()

	// set up logging and parameters
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":          "go",
		"trace.mdtree.cli":         *tlevel,
		"trace.mdtree.markdown":    *tlevel,
		"trace.mdtree.styled":      *tlevel,
		parameters.KeyMaxDepth:     strconv.Itoa(*depth),
		parameters.KeyNormalize:    strconv.FormatBool(*normalize),
		parameters.KeyPreviewWidth: strconv.Itoa(*width),
		parameters.KeyMaxScan:      strconv.Itoa(*scan),
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
	pterm.Info.Println("Welcome to the markdown CLI") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up REPL
	repl, err := readline.New("md > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(1)
	}
	intp := NewIntp(regs)
	intp.repl = repl
	//
	// load markdown to use
	if *filename != "" {
		if err := intp.load(*filename); err != nil {
			os.Exit(core.UserError(err))
		}
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                             // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// parserFor creates a parser from the interpreter's registers.
func parserFor(regs *parameters.Registers) *markdown.Parser {
	return markdown.FromRegisters(regs)
}
