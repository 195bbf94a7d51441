package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/aqa/internal/aqa"
	"github.com/you-not-fish/aqa/internal/syntax"
)

// trace selects the intermediate results printed before the value.
type trace struct {
	tokens bool
	ast    bool
	format string // tree format: text, json, yaml
}

func newRunCmd(a *app) *cobra.Command {
	var (
		traceTokens bool
		traceAST    bool
		watch       bool
	)
	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Evaluate an AQA pseudocode file",
		Long: `Evaluate the expression in an AQA pseudocode file and print its value.

On failure the diagnostic names the stage (scanner, parser, or interpreter)
and the source position, and the exit status is 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr := trace{
				tokens: traceTokens || a.cfg.Trace.Tokens,
				ast:    traceAST || a.cfg.Trace.AST,
				format: a.cfg.Output.ASTFormat,
			}
			run := func() error {
				return a.runFile(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], tr)
			}
			if watch {
				return a.watchFile(cmd.Context(), cmd.ErrOrStderr(), args[0], run)
			}
			return run()
		},
	}
	cmd.Flags().BoolVar(&traceTokens, "trace-tokens", false, "print the token table before the value")
	cmd.Flags().BoolVar(&traceAST, "trace-ast", false, "print the expression tree before the value")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-run whenever the file changes")
	return cmd
}

// runFile evaluates filename and prints its value to stdout. Pipeline
// errors are reported on stderr and returned as errReported.
func (a *app) runFile(stdout, stderr io.Writer, filename string, tr trace) error {
	src, err := readSource(filename)
	if err != nil {
		return err
	}

	p := a.pipeline(filename)
	a.attachTrace(p, stdout, tr)

	v, err := p.Run(src)
	if err != nil {
		return a.report(stderr, filename, err)
	}
	fmt.Fprintln(stdout, a.styles.value(v.String()))
	return nil
}

// attachTrace installs hooks on p that print what tr selects to w.
func (a *app) attachTrace(p *aqa.Pipeline, w io.Writer, tr trace) {
	if tr.tokens {
		p.OnTokens = func(toks []syntax.Token) {
			fmt.Fprintln(w, a.styles.header("tokens"))
			syntax.FprintTokens(w, toks)
		}
	}
	if tr.ast {
		p.OnTree = func(x syntax.Expr) {
			fmt.Fprintln(w, a.styles.header("ast"))
			if err := printTree(w, x, tr.format); err != nil {
				a.logger.Warn("failed to print tree", "error", err)
			}
		}
	}
}
