// Package aqa runs AQA pseudocode source through the scanner, parser, and
// evaluator and reports failures tagged with the stage that produced them.
package aqa

import (
	"io"
	"log/slog"
	"time"

	"github.com/you-not-fish/aqa/internal/interp"
	"github.com/you-not-fish/aqa/internal/syntax"
	"github.com/you-not-fish/aqa/internal/value"
)

// Pipeline evaluates source text. The zero Pipeline is ready to use.
//
// A Pipeline holds no state between calls, so one value may serve
// concurrent Run calls as long as its hooks are safe for that.
type Pipeline struct {
	// Filename is reported in token and node positions. It may be empty.
	Filename string

	// Logger receives one debug record per completed stage. Nil discards.
	Logger *slog.Logger

	// OnTokens, if set, is called with the scanned tokens before parsing.
	OnTokens func([]syntax.Token)

	// OnTree, if set, is called with the parsed tree before evaluation.
	OnTree func(syntax.Expr)
}

// Run evaluates src with a default Pipeline.
func Run(src string) (value.Value, error) {
	var p Pipeline
	return p.Run(src)
}

// Run scans, parses, and evaluates src. The first error aborts the run and
// is returned as an *Error; no partial result is returned with it.
func (p *Pipeline) Run(src string) (value.Value, error) {
	x, err := p.Parse(src)
	if err != nil {
		return value.Value{}, err
	}

	start := time.Now()
	v, err := interp.Eval(x)
	if err != nil {
		return value.Value{}, &Error{Stage: StageInterpreter, Err: err}
	}
	p.logger().Debug("evaluated",
		"stage", StageInterpreter.String(),
		"kind", v.Kind().String(),
		"elapsed", time.Since(start))
	return v, nil
}

// Scan runs the scanner over src and returns every token including EOF.
func (p *Pipeline) Scan(src string) ([]syntax.Token, error) {
	start := time.Now()
	toks, err := syntax.ScanAll(p.Filename, src)
	if err != nil {
		return nil, &Error{Stage: StageScanner, Err: err}
	}
	p.logger().Debug("scanned",
		"stage", StageScanner.String(),
		"tokens", len(toks),
		"elapsed", time.Since(start))
	if p.OnTokens != nil {
		p.OnTokens(toks)
	}
	return toks, nil
}

// Parse scans and parses src into an expression tree.
func (p *Pipeline) Parse(src string) (syntax.Expr, error) {
	toks, err := p.Scan(src)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	x, err := syntax.NewParser(toks).Parse()
	if err != nil {
		return nil, &Error{Stage: StageParser, Err: err}
	}
	p.logger().Debug("parsed",
		"stage", StageParser.String(),
		"elapsed", time.Since(start))
	if p.OnTree != nil {
		p.OnTree(x)
	}
	return x, nil
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return discard
	}
	return p.Logger
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))
