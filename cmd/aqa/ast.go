package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/aqa/internal/syntax"
)

func newASTCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "ast <file>",
		Short: "Print the expression tree of an AQA pseudocode file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.Output.ASTFormat
			}
			if !validFormat(format) {
				return fmt.Errorf("unknown format %q: want text, json, or yaml", format)
			}

			filename := args[0]
			src, err := readSource(filename)
			if err != nil {
				return err
			}
			x, err := a.pipeline(filename).Parse(src)
			if err != nil {
				return a.report(cmd.ErrOrStderr(), filename, err)
			}
			return printTree(cmd.OutOrStdout(), x, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, json, or yaml (default from config)")
	return cmd
}

func validFormat(format string) bool {
	switch format {
	case "text", "json", "yaml":
		return true
	}
	return false
}

// printTree writes x to w in the given format. Unknown formats print text.
func printTree(w io.Writer, x syntax.Expr, format string) error {
	switch format {
	case "json":
		return syntax.FprintJSON(w, x)
	case "yaml":
		return syntax.FprintYAML(w, x)
	}
	syntax.Fprint(w, x)
	return nil
}
