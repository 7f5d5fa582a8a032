package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"recalc/internal/driver"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] (file.rc | dir)",
	Short: "Run a calculation sheet or every sheet in a directory",
	Long: `Run evaluates calculation sheets: one calculation per line,
"name := expression" defines a symbol for later lines, "#" starts a comment.
Sheets in a directory are independent documents and run in parallel`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().Int("jobs", 0, "parallel sheets when running a directory (0 = GOMAXPROCS)")
}

func runRun(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	_, opts, err := loadPipeline(cmd)
	if err != nil {
		return err
	}
	opts.Jobs = jobs

	info, err := os.Stat(args[0])
	if err != nil {
		return err
	}

	var sheets []*driver.SheetResult
	if info.IsDir() {
		sheets, err = driver.RunDir(cmd.Context(), args[0], opts)
		if err != nil {
			return err
		}
	} else {
		sheet, err := driver.RunFile(cmd.Context(), args[0], opts)
		if err != nil {
			return err
		}
		sheets = []*driver.SheetResult{sheet}
	}

	failed := false
	for _, sheet := range sheets {
		printSheet(cmd, sheet)
		if sheet.HasErrors() {
			failed = true
		}
	}
	if failed {
		return errDiagnostics
	}
	return nil
}

func printSheet(cmd *cobra.Command, sheet *driver.SheetResult) {
	out := cmd.OutOrStdout()
	for _, line := range sheet.Lines {
		if !line.OK {
			printDiagnostics(cmd, line.Result.Bag, line.Result.FileSet)
			continue
		}
		if line.Name != "" {
			fmt.Fprintf(out, "%s:%d: %s = %s\n", sheet.Path, line.LineNum, line.Name, line.Value.String())
		} else {
			fmt.Fprintf(out, "%s:%d: %s\n", sheet.Path, line.LineNum, line.Value.String())
		}
	}
}
