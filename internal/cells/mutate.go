package cells

import "strings"

// Delete removes the cell at index from text and renumbers the remaining
// cells from 1 in their new order. An out-of-range index returns text
// unchanged. Deleting the last remaining cell returns the empty string.
// Headers are regenerated from position, bodies lose trailing whitespace so
// repeated deletions cannot accumulate blank lines, and any text before the
// first header does not survive the rewrite.
func Delete(text string, index int) string {
	blocks := Parse(text)
	if index < 0 || index >= len(blocks) {
		return text
	}
	blocks = append(blocks[:index], blocks[index+1:]...)
	return Join(blocks)
}

// Join renders cells back into flat text: positional headers starting at 1,
// one blank line between cells, no trailing newline.
func Join(blocks []Block) string {
	if len(blocks) == 0 {
		return ""
	}
	parts := make([]string, 0, len(blocks))
	for i, b := range blocks {
		body := strings.TrimRight(strings.Join(b.Body, "\n"), " \t\r\n")
		header := HeaderLine(i + 1)
		if body == "" {
			parts = append(parts, header)
			continue
		}
		parts = append(parts, header+"\n"+body)
	}
	return strings.Join(parts, "\n\n")
}

// Assemble formats extracted cell contents as numbered-cell text, the shape
// the rest of the system consumes.
func Assemble(inputs []string) string {
	blocks := make([]Block, 0, len(inputs))
	for _, in := range inputs {
		blocks = append(blocks, Block{Body: SplitLines(in)})
	}
	return Join(blocks)
}
