package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"recalc/internal/diag"
	"recalc/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <sev> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes аналогично.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}
	for _, d := range items {
		writeDiagnostic(w, d, fs, opts)
	}
	if rest := bag.Len() - len(items); rest > 0 {
		fmt.Fprintf(w, "... and %d more\n", rest)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	start, _ := fs.Resolve(d.Primary)
	file := fs.Get(d.Primary.File)

	sev := severityLabel(d.Severity, opts.Color)
	code := d.Code.ID()
	if opts.Color {
		code = color.New(color.Bold).Sprint(code)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		displayPath(file, opts.PathMode), start.Line, start.Col, sev, code, d.Message)

	writeContext(w, file, fs, d.Primary, opts)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nStart, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  note: %d:%d: %s\n", nStart.Line, nStart.Col, n.Msg)
		}
	}
}

// writeContext печатает исходную строку и подчёркивание ^~~~ под спаном.
// Ширина подчёркивания считается в экранных колонках, не в байтах.
func writeContext(w io.Writer, file *source.File, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	if file == nil {
		return
	}
	start, end := fs.Resolve(sp)
	line := file.GetLine(start.Line)
	if line == "" && sp.Len() == 0 && start.Col == 1 {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	// Колонки 1-based и байтовые; пересчитываем в экранную ширину.
	startByte := int(start.Col) - 1
	endByte := len(line)
	if end.Line == start.Line {
		endByte = int(end.Col) - 1
	}
	startByte = min(startByte, len(line))
	endByte = min(endByte, len(line))

	pad := runewidth.StringWidth(line[:startByte])
	width := runewidth.StringWidth(line[startByte:endByte])

	marker := "^"
	if width > 1 {
		marker += strings.Repeat("~", width-1)
	}
	if opts.Color {
		marker = color.New(color.FgRed, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), marker)
}

func severityLabel(sev diag.Severity, colored bool) string {
	label := sev.String()
	if !colored {
		return label
	}
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).Sprint(label)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold).Sprint(label)
	default:
		return color.New(color.FgCyan).Sprint(label)
	}
}

func displayPath(file *source.File, mode PathMode) string {
	if file == nil {
		return "<unknown>"
	}
	switch mode {
	case PathModeBasename:
		return filepath.Base(file.Path)
	case PathModeAbsolute:
		if abs, err := filepath.Abs(file.Path); err == nil {
			return abs
		}
	}
	return file.Path
}
