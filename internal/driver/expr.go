package driver

import (
	"context"
	"fmt"
	"strings"

	"recalc/internal/diag"
	"recalc/internal/eval"
	"recalc/internal/source"
	"recalc/internal/symbols"
	"recalc/internal/units"
)

// ExprResult держит результат полного прогона одного выражения.
type ExprResult struct {
	FileSet *source.FileSet
	File    *source.File
	Value   eval.Value
	Bag     *diag.Bag
	OK      bool
}

// EvalText прогоняет выражение через весь конвейер над данными таблицами.
// Дедлайн из Options ограничивает фазу вычисления.
func EvalText(ctx context.Context, name, text string, sys units.System,
	syms *symbols.Table[eval.Value], opts Options) *ExprResult {

	pr := ParseText(name, text, opts)
	res := &ExprResult{FileSet: pr.FileSet, File: pr.File, Bag: pr.Bag}
	if !pr.OK {
		return res
	}

	if opts.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Deadline)
		defer cancel()
	}

	ev := eval.New(sys, syms, diag.BagReporter{Bag: pr.Bag})
	res.Value, res.OK = ev.Eval(ctx, pr.Expr)
	return res
}

// EvalDefine вычисляет определение вида "name=expression" и кладёт результат
// в syms. Выражение видит привязки более ранних определений. Ошибка только
// при кривой форме строки, ошибки вычисления остаются в Bag результата.
func EvalDefine(ctx context.Context, def string, sys units.System,
	syms *symbols.Table[eval.Value], opts Options) (*ExprResult, error) {

	name, text, ok := strings.Cut(def, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" || strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("driver: definition %q is not in name=expression form", def)
	}
	res := EvalText(ctx, fmt.Sprintf("<define %s>", name), text, sys, syms, opts)
	if res.OK {
		syms.Define(name, res.Value)
	}
	return res, nil
}
