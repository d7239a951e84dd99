package celldiff

import "github.com/sergi/go-diff/diffmatchpatch"

// pairRuns renders a removed run and the added run that directly follows it
// for one side. Lines are paired by position: the shared prefix becomes
// Modified lines with character-level spans, leftovers beyond it become
// whole Removed lines (left only) or whole Added lines (right only). A
// leftover belonging to the other side emits nothing, since that line does
// not exist in the requested side's text. Either run may be nil, which
// renders the other run entirely as leftovers.
//
// Pairing is positional on purpose: an adjacent removed/added pair is
// treated as a line-by-line rewrite. Realigning by content would cost a
// nested diff over the sub-range for marginal benefit on this input shape.
func pairRuns(removed, added []string, side Side) []RenderLine {
	paired := min(len(removed), len(added))
	out := make([]RenderLine, 0, max(len(removed), len(added)))

	for i := 0; i < paired; i++ {
		out = append(out, RenderLine{
			Kind:  LineModified,
			Spans: charSpans(removed[i], added[i], side),
		})
	}

	switch side {
	case Left:
		for _, line := range removed[paired:] {
			out = append(out, RenderLine{
				Kind:  LineRemoved,
				Spans: []Span{{Text: line, Kind: SpanDeleted}},
			})
		}
	case Right:
		for _, line := range added[paired:] {
			out = append(out, RenderLine{
				Kind:  LineAdded,
				Spans: []Span{{Text: line, Kind: SpanInserted}},
			})
		}
	}
	return out
}

// charSpans character-diffs one paired line and keeps the spans visible
// from the requested side: Normal and Deleted on the left, Normal and
// Inserted on the right. Dropping the other side's spans can leave
// same-kind neighbors, so the result is coalesced. A line with nothing
// left to show renders as a single empty Normal span.
func charSpans(oldLine, newLine string, side Side) []Span {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldLine, newLine, false)

	spans := make([]Span, 0, len(diffs))
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		var kind SpanKind
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			kind = SpanNormal
		case diffmatchpatch.DiffDelete:
			if side == Right {
				continue
			}
			kind = SpanDeleted
		case diffmatchpatch.DiffInsert:
			if side == Left {
				continue
			}
			kind = SpanInserted
		}
		if n := len(spans); n > 0 && spans[n-1].Kind == kind {
			spans[n-1].Text += d.Text
			continue
		}
		spans = append(spans, Span{Text: d.Text, Kind: kind})
	}

	if len(spans) == 0 {
		return []Span{{}}
	}
	return spans
}
