package celldiff

// Group is a contiguous range of RenderLines belonging to one cell, or a
// single line outside every cell. Start and Count index into the line list
// the group was built from.
type Group struct {
	Start   int
	Count   int
	BlockID *int
}

// Contains reports whether line index i falls inside the group.
func (g Group) Contains(i int) bool {
	return i >= g.Start && i < g.Start+g.Count
}

// GroupByBlock clusters consecutive lines that share a defined block id
// into maximal groups. Lines without a block id form single-line groups,
// and two neighbors with different defined ids never merge, so group
// boundaries always coincide with cell boundaries.
func GroupByBlock(lines []RenderLine) []Group {
	var groups []Group
	for i, line := range lines {
		if line.BlockID == nil {
			groups = append(groups, Group{Start: i, Count: 1})
			continue
		}
		if n := len(groups); n > 0 {
			last := &groups[n-1]
			if last.BlockID != nil && *last.BlockID == *line.BlockID && last.Start+last.Count == i {
				last.Count++
				continue
			}
		}
		groups = append(groups, Group{Start: i, Count: 1, BlockID: intPtr(*line.BlockID)})
	}
	return groups
}

// GroupAt returns the index of the group containing line index i, or -1.
func GroupAt(groups []Group, i int) int {
	for gi, g := range groups {
		if g.Contains(i) {
			return gi
		}
	}
	return -1
}
