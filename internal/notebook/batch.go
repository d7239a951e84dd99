package notebook

import (
	"strings"

	"nbdiff/internal/cells"
)

const batchRule = "----------------------------------------------------------------------"

// FormatBatch renders extracted cells in the batch output shape: numbered
// headers with a dashed rule after each cell, or a placeholder when the
// notebook had no input cells.
func FormatBatch(inputs []string) string {
	if len(inputs) == 0 {
		return "(No input cells found)\n"
	}
	var b strings.Builder
	for i, in := range inputs {
		b.WriteString(cells.HeaderLine(i + 1))
		b.WriteString("\n")
		b.WriteString(in)
		b.WriteString("\n\n")
		b.WriteString(batchRule)
		b.WriteString("\n\n")
	}
	return b.String()
}
