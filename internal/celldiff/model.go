// Package celldiff builds the per-side rendering model for a comparison of
// two cell-structured texts. Lines are diffed at line granularity, adjacent
// removed/added runs are paired positionally into character-level modified
// lines, and every emitted line carries the cell membership of its position
// in the requested side's text.
//
// The model is rebuilt from scratch from the two raw texts; nothing here is
// mutated in place and nothing performs I/O.
package celldiff

// Side selects which of the two texts a rendering model is produced for.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// SpanKind classifies a run of characters within one rendered line.
type SpanKind int

const (
	SpanNormal SpanKind = iota
	SpanInserted
	SpanDeleted
)

// Span is a contiguous run of characters of one kind. The spans of a line,
// concatenated, reconstruct that line's text as seen from the requested
// side: a left-side line carries no Inserted spans, a right-side line no
// Deleted spans.
type Span struct {
	Text string
	Kind SpanKind
}

// LineKind classifies a rendered line as a whole.
type LineKind int

const (
	LineUnchanged LineKind = iota
	LineAdded
	LineRemoved
	LineModified
)

// RenderLine is one line of the rendering model for one side. Spans is
// never empty; an empty line is a single empty Normal span. BlockID is nil
// for lines outside any cell. Exactly one RenderLine is produced per line
// of the requested side's text, in order.
type RenderLine struct {
	Kind          LineKind
	Spans         []Span
	BlockID       *int
	IsBlockHeader bool
}

// Text returns the line's text as seen from its own side.
func (l RenderLine) Text() string {
	if len(l.Spans) == 1 {
		return l.Spans[0].Text
	}
	var n int
	for _, s := range l.Spans {
		n += len(s.Text)
	}
	buf := make([]byte, 0, n)
	for _, s := range l.Spans {
		buf = append(buf, s.Text...)
	}
	return string(buf)
}
