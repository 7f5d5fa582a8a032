package diag

import (
	"recalc/internal/source"
)

// Note attaches secondary context to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is the value form of every error, warning and note the kernel
// produces. It carries the taxonomy code, a human-readable message and the
// primary source span of the offending text.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
		Notes:    nil,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// Error makes the value usable through the error interface at the CLI
// boundary. Inside the kernel diagnostics travel as plain values.
func (d *Diagnostic) Error() string {
	return d.Code.ID() + ": " + d.Message
}
