package app

const splitRatioStep = 0.05

// paneWidths splits the window between the two panes at the given ratio.
// Widths returned here are content widths, not outer widths.
// Border overhead is 3: outer left + shared divider + outer right.
func paneWidths(totalWidth int, ratio float64) (int, int) {
	available := totalWidth - 3
	if available < 2 {
		return 1, 1
	}

	left := int(float64(available) * ratio)
	if left < 1 {
		left = 1
	}
	if left > available-1 {
		left = available - 1
	}
	return left, available - left
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
