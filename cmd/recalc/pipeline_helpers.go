package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"recalc/internal/config"
	"recalc/internal/diag"
	"recalc/internal/diagfmt"
	"recalc/internal/driver"
	"recalc/internal/source"
	"recalc/internal/units"
)

// loadPipeline собирает конфигурацию и опции конвейера из recalc.toml
// и глобальных флагов.
func loadPipeline(cmd *cobra.Command) (*config.Config, driver.Options, error) {
	cfg, err := config.Load(".")
	if err != nil {
		return nil, driver.Options{}, err
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return nil, driver.Options{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if maxDiagnostics <= 0 {
		maxDiagnostics = cfg.MaxDiagnostics()
	}

	opts := driver.Options{
		MaxDiagnostics: maxDiagnostics,
		Deadline:       cfg.Deadline(),
		NewSystem: func() (units.System, error) {
			table := units.NewTable()
			if err := cfg.ApplyUnits(table); err != nil {
				return nil, err
			}
			return table, nil
		},
	}
	return cfg, opts, nil
}

// useColor решает, красить ли вывод в поток out.
func useColor(cmd *cobra.Command, out *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	switch colorFlag {
	case "on":
		return true
	case "off":
		return false
	}
	return isTerminal(out)
}

// printDiagnostics выводит диагностики в stderr, с подавлением
// неошибочных при --quiet.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if bag.Len() == 0 {
		return
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if quiet && !bag.HasErrors() {
		return
	}
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		ShowNotes: true,
	})
}

// errDiagnostics — типовой код выхода, когда конвейер сообщил об ошибках.
var errDiagnostics = fmt.Errorf("diagnostics reported")
