package celldiff

// Row aligns the two per-side models for side-by-side presentation. Left
// and Right index into the respective RenderLine lists; -1 marks a pane
// that shows padding because the line exists only on the other side.
type Row struct {
	Left  int
	Right int
}

// AlignRows zips the left and right models of one comparison into display
// rows. Removed lines pair with right padding, added lines with left
// padding, and everything else pairs one to one; both models come from the
// same edit script, so the zip never reorders either side.
func AlignRows(left, right []RenderLine) []Row {
	rows := make([]Row, 0, max(len(left), len(right)))
	i, j := 0, 0
	for i < len(left) || j < len(right) {
		switch {
		case i < len(left) && left[i].Kind == LineRemoved:
			rows = append(rows, Row{Left: i, Right: -1})
			i++
		case j < len(right) && right[j].Kind == LineAdded:
			rows = append(rows, Row{Left: -1, Right: j})
			j++
		case i < len(left) && j < len(right):
			rows = append(rows, Row{Left: i, Right: j})
			i++
			j++
		case i < len(left):
			rows = append(rows, Row{Left: i, Right: -1})
			i++
		default:
			rows = append(rows, Row{Left: -1, Right: j})
			j++
		}
	}
	return rows
}
