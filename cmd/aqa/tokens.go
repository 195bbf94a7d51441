package main

import (
	"github.com/spf13/cobra"

	"github.com/you-not-fish/aqa/internal/syntax"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the tokens of an AQA pseudocode file",
		Long: `Scan a file and print one token per line: position, kind, and the
literal value or identifier name when the token carries one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			src, err := readSource(filename)
			if err != nil {
				return err
			}
			toks, err := a.pipeline(filename).Scan(src)
			if err != nil {
				return a.report(cmd.ErrOrStderr(), filename, err)
			}
			return syntax.FprintTokens(cmd.OutOrStdout(), toks)
		},
	}
}
