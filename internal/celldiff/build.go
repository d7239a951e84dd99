package celldiff

import "nbdiff/internal/cells"

// ForSide builds the ordered rendering model of the comparison as seen from
// one side. The edit script is computed once and walked once; emission is
// parameterized by side, so the two views share the same pass. Every
// emitted RenderLine corresponds to exactly one line of the requested
// side's text, which is why the membership index advances exactly once per
// emitted line: lines that exist only on the other side never reach the
// output for this side.
func ForSide(leftText, rightText string, side Side) []RenderLine {
	own := leftText
	if side == Right {
		own = rightText
	}
	return walk(Script(leftText, rightText), cells.Segment(own), side)
}

// walk folds the edit script into RenderLines, threading the requested
// side's own line index through the segmentation lookup.
func walk(runs []Run, seg map[int]cells.Membership, side Side) []RenderLine {
	out := make([]RenderLine, 0, scriptLines(runs))
	idx := 0

	emit := func(line RenderLine) {
		if m, ok := seg[idx]; ok {
			line.BlockID = intPtr(m.BlockID)
			line.IsBlockHeader = m.IsHeader
		}
		out = append(out, line)
		idx++
	}

	for i := 0; i < len(runs); {
		run := runs[i]
		switch run.Op {
		case RunEqual:
			for _, text := range run.Lines {
				emit(RenderLine{Kind: LineUnchanged, Spans: []Span{{Text: text}}})
			}
			i++

		case RunRemoved:
			var added []string
			if i+1 < len(runs) && runs[i+1].Op == RunAdded {
				added = runs[i+1].Lines
				i += 2
			} else {
				i++
			}
			for _, line := range pairRuns(run.Lines, added, side) {
				emit(line)
			}

		case RunAdded:
			// Not preceded by a removed run, otherwise the pair above
			// consumed it.
			for _, line := range pairRuns(nil, run.Lines, side) {
				emit(line)
			}
			i++
		}
	}
	return out
}

func scriptLines(runs []Run) int {
	n := 0
	for _, r := range runs {
		n += len(r.Lines)
	}
	return n
}

func intPtr(n int) *int {
	v := n
	return &v
}
