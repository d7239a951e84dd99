package celldiff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"nbdiff/internal/cells"
)

// sideText reassembles the text a side's render lines claim to show:
// Inserted spans are invisible on the left, Deleted spans on the right.
func sideText(t *testing.T, lines []RenderLine, side Side) string {
	t.Helper()
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		require.NotEmpty(t, l.Spans, "render line with no spans")
		var b strings.Builder
		for _, s := range l.Spans {
			if side == Left && s.Kind == SpanInserted {
				continue
			}
			if side == Right && s.Kind == SpanDeleted {
				continue
			}
			b.WriteString(s.Text)
		}
		out = append(out, b.String())
	}
	return strings.Join(out, "\n")
}

func kinds(lines []RenderLine) []LineKind {
	out := make([]LineKind, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Kind)
	}
	return out
}

func TestForSideIdentity(t *testing.T) {
	text := "(* Input 1 *)\nx = 1\n\n(* Input 2 *)\ny = 2"
	for _, side := range []Side{Left, Right} {
		lines := ForSide(text, text, side)
		for _, l := range lines {
			require.Equal(t, LineUnchanged, l.Kind)
			require.Len(t, l.Spans, 1)
			require.Equal(t, SpanNormal, l.Spans[0].Kind)
		}
		require.Equal(t, text, sideText(t, lines, side))
	}
}

func TestForSideModifiedLine(t *testing.T) {
	left := ForSide("a\nb\nc", "a\nx\nc", Left)
	require.Equal(t, []LineKind{LineUnchanged, LineModified, LineUnchanged}, kinds(left))
	if diff := cmp.Diff([]Span{{Text: "b", Kind: SpanDeleted}}, left[1].Spans); diff != "" {
		t.Errorf("left modified spans (-want +got):\n%s", diff)
	}

	right := ForSide("a\nb\nc", "a\nx\nc", Right)
	require.Equal(t, []LineKind{LineUnchanged, LineModified, LineUnchanged}, kinds(right))
	if diff := cmp.Diff([]Span{{Text: "x", Kind: SpanInserted}}, right[1].Spans); diff != "" {
		t.Errorf("right modified spans (-want +got):\n%s", diff)
	}
}

func TestForSideLeftovers(t *testing.T) {
	left := ForSide("a\nb\nc\nd", "a\nx", Left)
	require.Equal(t, []LineKind{LineUnchanged, LineModified, LineRemoved, LineRemoved}, kinds(left))
	require.Equal(t, "a\nb\nc\nd", sideText(t, left, Left))

	// The removed leftovers do not exist on the right.
	right := ForSide("a\nb\nc\nd", "a\nx", Right)
	require.Equal(t, []LineKind{LineUnchanged, LineModified}, kinds(right))
	require.Equal(t, "a\nx", sideText(t, right, Right))
}

func TestForSideAddedRun(t *testing.T) {
	left := ForSide("a\nc", "a\nb\nc", Left)
	require.Equal(t, []LineKind{LineUnchanged, LineUnchanged}, kinds(left))

	right := ForSide("a\nc", "a\nb\nc", Right)
	require.Equal(t, []LineKind{LineUnchanged, LineAdded, LineUnchanged}, kinds(right))
	if diff := cmp.Diff([]Span{{Text: "b", Kind: SpanInserted}}, right[1].Spans); diff != "" {
		t.Errorf("added spans (-want +got):\n%s", diff)
	}
}

func TestForSideReconstruction(t *testing.T) {
	pairs := []struct{ left, right string }{
		{"a\nb\nc", "a\nx\nc"},
		{"a\nb\nc\nd", "a\nx"},
		{"", ""},
		{"", "fresh\ncontent"},
		{"old\ncontent", ""},
		{"shared\nonly left\nshared tail", "shared\nonly right\nextra\nshared tail"},
		{
			"(* Input 1 *)\nx = 1\n\n(* Input 2 *)\ny = 2",
			"(* Input 1 *)\nx = 1\n\n(* Input 2 *)\ny = 99\nz = 3",
		},
	}
	for _, p := range pairs {
		leftLines := ForSide(p.left, p.right, Left)
		rightLines := ForSide(p.left, p.right, Right)

		wantLeft := strings.Join(cells.SplitLines(p.left), "\n")
		wantRight := strings.Join(cells.SplitLines(p.right), "\n")
		require.Equal(t, wantLeft, sideText(t, leftLines, Left), "left of %q vs %q", p.left, p.right)
		require.Equal(t, wantRight, sideText(t, rightLines, Right), "right of %q vs %q", p.left, p.right)
	}
}

func TestForSideEmptyLineSpans(t *testing.T) {
	// A modified pair that leaves nothing visible still renders one empty
	// Normal span.
	left := ForSide("", "added", Left)
	require.Equal(t, []LineKind{LineModified}, kinds(left))
	if diff := cmp.Diff([]Span{{}}, left[0].Spans); diff != "" {
		t.Errorf("empty line spans (-want +got):\n%s", diff)
	}
}

func TestForSideBlockMembership(t *testing.T) {
	left := "(* Input 1 *)\nx = 1\n\n(* Input 2 *)\ny = 2"
	right := "(* Input 1 *)\nx = 1\n\n(* Input 9 *)\nnew = 0\n\n(* Input 2 *)\ny = 2"

	leftLines := ForSide(left, right, Left)
	require.Len(t, leftLines, 5)
	wantLeft := []struct {
		id     int
		header bool
	}{
		{0, true},
		{0, false},
		{0, false},
		{1, true},
		{1, false},
	}
	for i, w := range wantLeft {
		require.NotNil(t, leftLines[i].BlockID, "left line %d", i)
		require.Equal(t, w.id, *leftLines[i].BlockID, "left line %d", i)
		require.Equal(t, w.header, leftLines[i].IsBlockHeader, "left line %d", i)
	}

	rightLines := ForSide(left, right, Right)
	require.Len(t, rightLines, 8)
	var ids []int
	var headers []bool
	for _, l := range rightLines {
		require.NotNil(t, l.BlockID)
		ids = append(ids, *l.BlockID)
		headers = append(headers, l.IsBlockHeader)
	}
	require.Equal(t, []int{0, 0, 0, 1, 1, 1, 2, 2}, ids)
	require.Equal(t, []bool{true, false, false, true, false, false, true, false}, headers)
}

func TestForSideMembershipSkipsOtherSideLines(t *testing.T) {
	// The right side gains two lines inside cell 1; left membership must
	// not shift past them.
	left := "(* Input 1 *)\na\n\n(* Input 2 *)\nb"
	right := "(* Input 1 *)\na\nextra\nmore\n\n(* Input 2 *)\nb"

	leftLines := ForSide(left, right, Left)
	require.Len(t, leftLines, 5)
	require.Equal(t, 1, *leftLines[3].BlockID)
	require.True(t, leftLines[3].IsBlockHeader)
	require.Equal(t, "(* Input 2 *)", leftLines[3].Text())
}

func TestForSidePreambleHasNoBlock(t *testing.T) {
	text := "loose line\n(* Input 1 *)\nx"
	lines := ForSide(text, text, Left)
	require.Len(t, lines, 3)
	require.Nil(t, lines[0].BlockID)
	require.NotNil(t, lines[1].BlockID)
	require.True(t, lines[1].IsBlockHeader)
}

func TestRenderLineText(t *testing.T) {
	line := RenderLine{Spans: []Span{{Text: "a = "}, {Text: "1", Kind: SpanDeleted}}}
	require.Equal(t, "a = 1", line.Text())
	require.Equal(t, "", RenderLine{Spans: []Span{{}}}.Text())
}
