package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"recalc/internal/diagfmt"
	"recalc/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] (file | -e expression)",
	Short: "Tokenize an expression or a sheet file",
	Long:  `Tokenize breaks the input down into its constituent tokens`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().StringP("expr", "e", "", "tokenize the given expression instead of a file")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	exprText, err := cmd.Flags().GetString("expr")
	if err != nil {
		return fmt.Errorf("failed to get expr flag: %w", err)
	}

	_, opts, err := loadPipeline(cmd)
	if err != nil {
		return err
	}

	var result *driver.TokenizeResult
	switch {
	case exprText != "":
		result = driver.TokenizeText("<expr>", exprText, opts)
	case len(args) == 1:
		result, err = driver.Tokenize(args[0], opts)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
	default:
		return fmt.Errorf("expected a file argument or -e expression")
	}

	printDiagnostics(cmd, result.Bag, result.FileSet)

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
