package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"recalc/internal/driver"
	"recalc/internal/eval"
	"recalc/internal/symbols"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] expression",
	Short: "Evaluate a single expression",
	Long:  `Eval runs one expression through the tokenizer, parser and evaluator and prints the resulting value`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEval,
}

func init() {
	evalCmd.Flags().StringArrayP("define", "d", nil, "bind name=expression before evaluating (repeatable)")
}

func runEval(cmd *cobra.Command, args []string) error {
	_, opts, err := loadPipeline(cmd)
	if err != nil {
		return err
	}
	sys, err := opts.NewSystem()
	if err != nil {
		return err
	}
	syms := symbols.NewTable[eval.Value]()

	defs, err := cmd.Flags().GetStringArray("define")
	if err != nil {
		return err
	}
	for _, def := range defs {
		res, err := driver.EvalDefine(context.Background(), def, sys, syms, opts)
		if err != nil {
			return err
		}
		if !res.OK {
			printDiagnostics(cmd, res.Bag, res.FileSet)
			return errDiagnostics
		}
	}

	result := driver.EvalText(context.Background(), "<expr>", args[0], sys, syms, opts)
	printDiagnostics(cmd, result.Bag, result.FileSet)
	if !result.OK {
		return errDiagnostics
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Value.String())
	return nil
}
