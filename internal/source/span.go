package source

import (
	"fmt"
)

// Span is a half-open [Start, End) byte range into the content of one file.
type Span struct {
	File  FileID
	Start uint32 // в байтах, включительно
	End   uint32 // в байтах, не включительно
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover extends s to include other. Spans from different files are not
// coverable; s is returned unchanged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// After returns the empty span positioned right after s. Used for
// "unexpected end of input" diagnostics.
func (s Span) After() Span {
	return Span{File: s.File, Start: s.End, End: s.End}
}
