package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/mdtree/core"
	"github.com/npillmayer/mdtree/core/option"
	"github.com/npillmayer/mdtree/core/parameters"
	"github.com/npillmayer/mdtree/engine/styled"
	"github.com/npillmayer/mdtree/input/markdown"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	repl   *readline.Instance
	regs   *parameters.Registers
	parser *markdown.Parser
	source string // text loaded from a file
}

// NewIntp creates an interpreter with markdown parameters from regs.
// Parameters changed during a session live in a group of their own, which
// command 'reset' drops.
func NewIntp(regs *parameters.Registers) *Intp {
	if regs == nil {
		regs = parameters.NewRegisters()
	}
	if regs.Level() == 0 {
		regs.Begingroup()
	}
	return &Intp{regs: regs, parser: parserFor(regs)}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op codes of commands
const (
	QUIT int = iota
	HELP
	PARSE
	PLAIN
	PREVIEW
	MATCH
	STYLED
	LOAD
	DEPTH
	WIDTH
	RESET
)

// Command is a parsed input line, e.g. "width:40" or "parse **text**".
type Command struct {
	code  int
	arg   string // argument after ':'
	input string // markdown after the command word
}

func parseCommand(line string) (*Command, error) {
	word, input := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		word, input = line[:i], strings.TrimLeft(line[i+1:], " \t")
	}
	c := strings.SplitN(word, ":", 2) // e.g. "width:40" or "help:match"
	command := &Command{
		arg:   getOptArg(c, 1),
		input: unescape(input),
	}
	tracer().Debugf("parse command = %v", c)
	switch strings.ToLower(c[0]) {
	case "quit", "exit":
		command.code = QUIT
	case "help", "?":
		command.code = HELP
	case "parse", "tree":
		command.code = PARSE
	case "plain":
		command.code = PLAIN
	case "preview":
		command.code = PREVIEW
	case "match":
		command.code = MATCH
	case "styled", "runs":
		command.code = STYLED
	case "load":
		command.code = LOAD
	case "depth":
		command.code = DEPTH
	case "width":
		command.code = WIDTH
	case "reset":
		command.code = RESET
	default:
		return nil, core.Error(core.EINVALID, "unknown command %q, try 'help'", c[0])
	}
	return command, nil
}

// unescape replaces escape sequences \n, \t and \\ of an input line.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	r := strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\t`, "\t")
	return r.Replace(s)
}

func (intp *Intp) execute(cmd *Command) (bool, error) {
	tracer().Debugf("cmd = %v", cmd)
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help(cmd.arg)
		return false, nil
	case LOAD:
		return false, intp.load(cmd.arg)
	case DEPTH, WIDTH:
		return false, intp.set(cmd)
	case RESET:
		intp.reset()
		return false, nil
	}
	src := cmd.input
	if src == "" {
		src = intp.source
	}
	if src == "" {
		return false, core.Error(core.EMISSING, "no markdown input; enter some after the command or load a file")
	}
	switch cmd.code {
	case PARSE:
		return false, printTree(intp.parser.Parse(src))
	case PLAIN:
		pterm.Println(intp.parser.PlainText(src))
	case PREVIEW:
		pterm.Println(intp.parser.Preview(src, intp.regs.N(parameters.P_PREVIEWWIDTH)))
	case MATCH:
		printMatches(intp.parser.Grammar(), intp.parser.Prepare(src))
	case STYLED:
		para, err := styled.FromElements(intp.parser.Parse(src))
		if err != nil {
			return false, err
		}
		return false, para.ForEachStyleRun(func(run styled.Run) error {
			pterm.Printfln("%4d  %-24q %s", run.Position, run.Text, run.StyleSet)
			return nil
		})
	}
	return false, nil
}

// set changes a markdown parameter and re-creates the parser.
func (intp *Intp) set(cmd *Command) error {
	n, err := strconv.Atoi(cmd.arg)
	if err != nil || n < 0 {
		return core.WrapError(err, core.EINVALID, "argument must be a non-negative number, is %q", cmd.arg)
	}
	if cmd.code == WIDTH && n == 0 {
		return core.Error(core.EINVALID, "preview width must be positive")
	}
	switch cmd.code {
	case DEPTH:
		intp.regs.Push(parameters.P_MAXDEPTH, n)
	case WIDTH:
		intp.regs.Push(parameters.P_PREVIEWWIDTH, n)
	}
	intp.parser = parserFor(intp.regs)
	intp.showParameters()
	return nil
}

// reset drops all parameters set during the session, returning to the
// configured values.
func (intp *Intp) reset() {
	level := intp.regs.Level()
	intp.regs.Endgroup()
	intp.regs.Begingroup()
	tracer().Debugf("reset parameter group at level %d", level)
	intp.parser = parserFor(intp.regs)
	intp.showParameters()
}

func (intp *Intp) showParameters() {
	pterm.Printfln("max-depth = %d, preview-width = %d",
		intp.regs.N(parameters.P_MAXDEPTH), intp.regs.N(parameters.P_PREVIEWWIDTH))
}

func (intp *Intp) load(filename string) error {
	if filename == "" {
		return core.Error(core.EINVALID, "usage: load:<file>")
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return core.WrapError(err, core.EMISSING, "cannot read markdown file %s", filename)
	}
	intp.source = string(b)
	tracer().Infof("loaded %d bytes of markdown from %s", len(b), filename)
	pterm.Printfln("loaded %s (%d bytes)", filename, len(b))
	return nil
}

// --- Output ----------------------------------------------------------------

func printTree(elements []markdown.Element) error {
	root := pterm.TreeNode{Text: "document", Children: treeNodes(elements)}
	return pterm.DefaultTree.WithRoot(root).Render()
}

func treeNodes(elements []markdown.Element) []pterm.TreeNode {
	nodes := make([]pterm.TreeNode, 0, len(elements))
	for _, e := range elements {
		nodes = append(nodes, pterm.TreeNode{
			Text:     label(e),
			Children: treeNodes(e.Elements()),
		})
	}
	return nodes
}

// label formats an element for display in a tree.
func label(e markdown.Element) string {
	var payload string
	switch x := e.(type) {
	case *markdown.Header:
		payload = fmt.Sprintf(" level=%d", x.Level)
	case *markdown.OrderedListItem:
		payload = fmt.Sprintf(" order=%s", x.Order)
	case *markdown.Link:
		payload = fmt.Sprintf(" target=%s", x.Target)
	case *markdown.Image:
		alt, _ := x.Alt.Match(option.Maybe{
			option.None: "-",
			option.Some: unwrap,
		})
		caption, _ := x.Caption.Match(option.Of{
			"":          " caption=empty",
			option.None: "",
			option.Some: func(c interface{}) (interface{}, error) {
				return fmt.Sprintf(" caption=%s", c), nil
			},
		})
		payload = fmt.Sprintf(" url=%s alt=%s%s", x.URL, alt, caption)
	}
	return fmt.Sprintf("%s%v%s %q", e.Kind(), e.Position(), payload, e.Content())
}

func unwrap(o interface{}) (interface{}, error) {
	return o.(option.String).Unwrap(), nil
}

// printMatches lists every position of src where more than zero forms match,
// marking the form selected by the parser.
func printMatches(g *markdown.Grammar, src string) {
	for i := 0; i < len(src); i++ {
		cands := g.Candidates(src, i)
		for j, m := range cands {
			mark := " "
			if j == 0 {
				mark = "*"
			}
			pterm.Printfln("%s %4d  %-20s %q", mark, i, m.Form, src[m.Span.Start:m.Span.End])
		}
	}
}

func help(topic string) {
	tracer().Debugf("help %v", topic)
	switch strings.ToLower(topic) {
	case "match":
		pterm.Info.Println("match <markdown>")
		pterm.Println(`
	Lists all syntactic forms matching at each position of the input.
	Forms are tried in priority order:

	  unordered-list-item, header, quote, italic, bold, strike,
	  horizontal-rule, inline-code, link, ordered-list-item, image,
	  fenced-code-block

	The form marked with '*' is the one the parser selects. The parser
	continues after the end of the selected match.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	parse <markdown>     show the element tree
	plain <markdown>     show plain text
	preview <markdown>   show a single-line preview
	match <markdown>     show candidate matches, see help:match
	styled <markdown>    show styled text runs
	load:<file>          load markdown from a file
	depth:<n>            set maximum nesting depth
	width:<n>            set preview width
	reset                restore configured depth and width
	quit                 leave
	`)
	}
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}
