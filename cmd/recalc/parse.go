package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"recalc/internal/diagfmt"
	"recalc/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] (file | -e expression)",
	Short: "Parse an expression and dump its tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringP("expr", "e", "", "parse the given expression instead of a file")
}

func runParse(cmd *cobra.Command, args []string) error {
	exprText, err := cmd.Flags().GetString("expr")
	if err != nil {
		return fmt.Errorf("failed to get expr flag: %w", err)
	}

	_, opts, err := loadPipeline(cmd)
	if err != nil {
		return err
	}

	var result *driver.ParseResult
	switch {
	case exprText != "":
		result = driver.ParseText("<expr>", exprText, opts)
	case len(args) == 1:
		result, err = driver.Parse(args[0], opts)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
	default:
		return fmt.Errorf("expected a file argument or -e expression")
	}

	printDiagnostics(cmd, result.Bag, result.FileSet)
	if !result.OK {
		return errDiagnostics
	}

	diagfmt.Tree(os.Stdout, result.Expr, result.FileSet)
	return nil
}
