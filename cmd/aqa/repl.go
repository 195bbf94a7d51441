package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/aqa/internal/syntax"
)

const contPrompt = "... "

const replHelp = `Enter an expression to evaluate it. An unfinished expression, such as
one ending in an operator or an open parenthesis, continues on the next
line; an empty line ends it.

Commands:
  :tokens   toggle printing tokens before each value
  :ast      toggle printing the fully parenthesized expression before each value
  :help     show this help
  :quit     leave the REPL (also Ctrl-D)`

func newREPLCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ln := liner.NewLiner()
			defer ln.Close()
			ln.SetCtrlCAborts(true)

			hist := a.cfg.HistoryPath()
			if hist != "" {
				if f, err := os.Open(hist); err == nil {
					ln.ReadHistory(f)
					f.Close()
				}
			}

			r := newREPL(a, ln, cmd.OutOrStdout(), cmd.ErrOrStderr())
			err := r.loop()

			if hist != "" {
				if f, err := os.Create(hist); err == nil {
					ln.WriteHistory(f)
					f.Close()
				} else {
					a.logger.Warn("failed to save history", "path", hist, "error", err)
				}
			}
			return err
		},
	}
}

// lineReader is the part of *liner.State the REPL uses.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

type repl struct {
	a      *app
	in     lineReader
	out    io.Writer
	errOut io.Writer
	prompt string
	tr     trace
}

func newREPL(a *app, in lineReader, out, errOut io.Writer) *repl {
	return &repl{
		a:      a,
		in:     in,
		out:    out,
		errOut: errOut,
		prompt: a.cfg.REPL.Prompt,
		tr: trace{
			tokens: a.cfg.Trace.Tokens,
			ast:    a.cfg.Trace.AST,
			format: a.cfg.Output.ASTFormat,
		},
	}
}

// loop reads and evaluates input until :quit or end of input.
func (r *repl) loop() error {
	fmt.Fprintln(r.out, r.a.styles.header("AQA pseudocode, :help for commands"))
	for {
		src, err := r.read()
		switch {
		case err == io.EOF:
			fmt.Fprintln(r.out)
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case err != nil:
			return err
		}

		line := strings.TrimSpace(src)
		if line == "" {
			continue
		}
		r.in.AppendHistory(src)

		if strings.HasPrefix(line, ":") {
			if r.command(line) {
				return nil
			}
			continue
		}
		r.eval(src)
	}
}

// read returns one entry. While the text so far fails only because it
// ends too early, it prompts for another line and appends it.
func (r *repl) read() (string, error) {
	src, err := r.in.Prompt(r.prompt)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(strings.TrimSpace(src), ":") {
		return src, nil
	}
	for strings.TrimSpace(src) != "" {
		_, perr := parseProbe(src)
		sep, more := continuation(perr)
		if !more {
			break
		}
		next, err := r.in.Prompt(contPrompt)
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(next) == "" {
			break
		}
		src += sep + next
	}
	return src, nil
}

// parseProbe parses src only to learn whether it is complete.
func parseProbe(src string) (syntax.Expr, error) {
	return syntax.ParseSource("", src)
}

// continuation reports whether err only means the input ended too early,
// and the separator to insert before the next line. An open text literal
// keeps the line break; anything else is joined onto the same line.
func continuation(err error) (sep string, ok bool) {
	var se *syntax.ScanError
	if errors.As(err, &se) {
		if se.Kind != syntax.UnexpectedEOF {
			return "", false
		}
		if se.Char == '\'' {
			return "\n", true
		}
		return "", true
	}
	var pe *syntax.ParseError
	if errors.As(err, &pe) {
		return " ", pe.Tok.Kind == syntax.EOF
	}
	return "", false
}

// command runs a colon command and reports whether the REPL should exit.
func (r *repl) command(line string) bool {
	switch line {
	case ":quit", ":q", ":exit":
		return true
	case ":tokens":
		r.tr.tokens = !r.tr.tokens
		fmt.Fprintf(r.out, "token trace %s\n", onOff(r.tr.tokens))
	case ":ast":
		r.tr.ast = !r.tr.ast
		fmt.Fprintf(r.out, "tree trace %s\n", onOff(r.tr.ast))
	case ":help", ":h":
		fmt.Fprintln(r.out, replHelp)
	default:
		fmt.Fprintf(r.errOut, "unknown command %s (try :help)\n", line)
	}
	return false
}

func (r *repl) eval(src string) {
	p := r.a.pipeline("")
	tr := r.tr
	tr.ast = false
	r.a.attachTrace(p, r.out, tr)
	if r.tr.ast {
		p.OnTree = func(x syntax.Expr) {
			fmt.Fprintln(r.out, r.a.styles.header("ast")+" "+syntax.ExprString(x))
		}
	}
	v, err := p.Run(src)
	if err != nil {
		if err := r.a.report(r.errOut, "", err); !errors.Is(err, errReported) {
			fmt.Fprintf(r.errOut, "error: %v\n", err)
		}
		return
	}
	fmt.Fprintln(r.out, r.a.styles.value(v.String()))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
