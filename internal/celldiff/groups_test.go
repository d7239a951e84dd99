package celldiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func blockLine(id int) RenderLine {
	return RenderLine{Kind: LineUnchanged, Spans: []Span{{}}, BlockID: intPtr(id)}
}

func plainLine() RenderLine {
	return RenderLine{Kind: LineUnchanged, Spans: []Span{{}}}
}

func TestGroupByBlock(t *testing.T) {
	lines := []RenderLine{
		plainLine(),
		blockLine(0), blockLine(0), blockLine(0),
		blockLine(1), blockLine(1),
		plainLine(), plainLine(),
		blockLine(2),
	}

	got := GroupByBlock(lines)
	want := []Group{
		{Start: 0, Count: 1},
		{Start: 1, Count: 3, BlockID: intPtr(0)},
		{Start: 4, Count: 2, BlockID: intPtr(1)},
		{Start: 6, Count: 1},
		{Start: 7, Count: 1},
		{Start: 8, Count: 1, BlockID: intPtr(2)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupByBlockAdjacentIDsStaySplit(t *testing.T) {
	// Consecutive cells with no separator line between them must not merge.
	lines := []RenderLine{blockLine(0), blockLine(1), blockLine(2)}
	got := GroupByBlock(lines)
	require.Len(t, got, 3)
	for i, g := range got {
		require.Equal(t, 1, g.Count)
		require.Equal(t, i, *g.BlockID)
	}
}

func TestGroupByBlockEmpty(t *testing.T) {
	require.Empty(t, GroupByBlock(nil))
}

func TestGroupByBlockFromBuild(t *testing.T) {
	text := "pre\n(* Input 1 *)\na\n\n(* Input 2 *)\nb"
	lines := ForSide(text, text, Left)
	groups := GroupByBlock(lines)

	require.Len(t, groups, 3)
	require.Nil(t, groups[0].BlockID)
	require.Equal(t, 0, *groups[1].BlockID)
	require.Equal(t, 3, groups[1].Count)
	require.Equal(t, 1, *groups[2].BlockID)
	require.Equal(t, 2, groups[2].Count)

	total := 0
	for _, g := range groups {
		total += g.Count
	}
	require.Equal(t, len(lines), total)
}

func TestGroupAt(t *testing.T) {
	groups := []Group{
		{Start: 0, Count: 2},
		{Start: 2, Count: 3, BlockID: intPtr(0)},
	}
	require.Equal(t, 0, GroupAt(groups, 1))
	require.Equal(t, 1, GroupAt(groups, 2))
	require.Equal(t, 1, GroupAt(groups, 4))
	require.Equal(t, -1, GroupAt(groups, 5))
	require.Equal(t, -1, GroupAt(nil, 0))
}
