package diagfmt

import (
	"encoding/json"
	"io"

	"recalc/internal/diag"
	"recalc/internal/source"
)

type jsonPosition struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

type jsonNote struct {
	Span source.Span   `json:"span"`
	Pos  *jsonPosition `json:"pos,omitempty"`
	Msg  string        `json:"msg"`
}

type jsonDiagnostic struct {
	Severity string        `json:"severity"`
	Code     string        `json:"code"`
	Message  string        `json:"message"`
	Span     source.Span   `json:"span"`
	Pos      *jsonPosition `json:"pos,omitempty"`
	Notes    []jsonNote    `json:"notes,omitempty"`
}

// JSON сериализует диагностики в машинный формат, по объекту на элемент.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}

	out := make([]jsonDiagnostic, 0, len(items))
	for _, d := range items {
		jd := jsonDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Span:     d.Primary,
		}
		if opts.IncludePositions {
			start, _ := fs.Resolve(d.Primary)
			jd.Pos = &jsonPosition{Line: start.Line, Col: start.Col}
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				jn := jsonNote{Span: n.Span, Msg: n.Msg}
				if opts.IncludePositions {
					start, _ := fs.Resolve(n.Span)
					jn.Pos = &jsonPosition{Line: start.Line, Col: start.Col}
				}
				jd.Notes = append(jd.Notes, jn)
			}
		}
		out = append(out, jd)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
