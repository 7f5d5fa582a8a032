package driver

import (
	"context"
	"fmt"
	"os"
	"strings"

	"recalc/internal/eval"
	"recalc/internal/symbols"
	"recalc/internal/units"
)

// LineResult is the outcome of one calculation line of a sheet.
type LineResult struct {
	LineNum int    // 1-based строка в листе
	Name    string // имя из `name := expr`, пусто для голого выражения
	Source  string // текст выражения как он записан
	Value   eval.Value
	Result  *ExprResult
	OK      bool
}

// SheetResult is the outcome of a whole sheet run.
type SheetResult struct {
	Path  string
	Lines []LineResult
}

// HasErrors reports whether any line failed.
func (r *SheetResult) HasErrors() bool {
	for _, l := range r.Lines {
		if !l.OK {
			return true
		}
	}
	return false
}

// RunSheet evaluates a calculation sheet: one calculation per line,
// `name := expression` defines a symbol, a bare expression just evaluates,
// `#` starts a comment. Lines run strictly in order; a failed line leaves
// the symbol table untouched and the run continues.
func RunSheet(ctx context.Context, path string, content []byte, sys units.System, opts Options) *SheetResult {
	syms := symbols.NewTable[eval.Value]()
	result := &SheetResult{Path: path}

	for i, raw := range strings.Split(string(content), "\n") {
		lineNum := i + 1
		line := raw
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		name, exprText := splitAssignment(line)

		// Виртуальный файл повторяет геометрию листа: пустые строки до
		// нужного номера и пробелы на месте `name :=`, чтобы спаны
		// диагностик совпадали с реальными позициями в листе.
		padded := strings.Repeat("\n", lineNum-1) + blankPrefix(line, exprText)
		er := EvalText(ctx, path, padded, sys, syms, opts)

		lr := LineResult{
			LineNum: lineNum,
			Name:    name,
			Source:  strings.TrimSpace(exprText),
			Value:   er.Value,
			Result:  er,
			OK:      er.OK,
		}
		if er.OK && name != "" {
			syms.Define(name, er.Value)
		}
		result.Lines = append(result.Lines, lr)
	}
	return result
}

// RunFile loads and runs one sheet from disk.
func RunFile(ctx context.Context, path string, opts Options) (*SheetResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", path, err)
	}
	sys, err := opts.newSystem()
	if err != nil {
		return nil, err
	}
	return RunSheet(ctx, path, content, sys, opts), nil
}

// splitAssignment отделяет `name :=` от выражения. Возвращает пустое имя,
// если строка — голое выражение.
func splitAssignment(line string) (name, expr string) {
	idx := strings.Index(line, ":=")
	if idx < 0 {
		return "", line
	}
	name = strings.TrimSpace(line[:idx])
	if name == "" || strings.ContainsAny(name, " \t") {
		// `:=` без корректного имени слева — считаем голым выражением;
		// парсер сам сообщит о мусоре.
		return "", line
	}
	return name, line[idx+2:]
}

// blankPrefix заменяет всё до начала выражения пробелами, сохраняя байтовые
// позиции хвоста строки.
func blankPrefix(line, expr string) string {
	prefix := len(line) - len(expr)
	return strings.Repeat(" ", prefix) + expr
}
