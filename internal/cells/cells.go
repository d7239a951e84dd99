// Package cells models the numbered-cell structure of extracted notebook
// text. A cell starts at a header line of the form "(* Input N *)" and runs
// until the next header or the end of the text. Cells are indexed from 0 in
// document order; the printed header number is informational only and is
// regenerated from position whenever the text is rewritten.
package cells

import (
	"regexp"
	"strconv"
	"strings"
)

var headerPattern = regexp.MustCompile(`^\(\* Input ([0-9]+) \*\)$`)

// ParseHeader reports whether the line, after trimming surrounding
// whitespace, is a cell header, and returns its printed number. The number
// is never used to derive cell order.
func ParseHeader(line string) (int, bool) {
	m := headerPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// HeaderLine renders the canonical header for cell number n.
func HeaderLine(n int) string {
	return "(* Input " + strconv.Itoa(n) + " *)"
}

// Membership describes one line's place in a side's cell structure.
type Membership struct {
	BlockID  int
	IsHeader bool
}

// Segment maps every line of text, by 0-based index, to the cell containing
// it. Lines before the first header belong to no cell and are absent from
// the map. Malformed headers are ordinary body lines.
func Segment(text string) map[int]Membership {
	seg := make(map[int]Membership)
	block := -1
	for i, line := range SplitLines(text) {
		if _, ok := ParseHeader(line); ok {
			block++
			seg[i] = Membership{BlockID: block, IsHeader: true}
			continue
		}
		if block >= 0 {
			seg[i] = Membership{BlockID: block}
		}
	}
	return seg
}

// Block is one parsed cell: its header line as written, the printed number,
// and the body lines up to the next header.
type Block struct {
	Header string
	Number int
	Body   []string
}

// Parse splits text into its ordered cells. Text before the first header is
// not part of any cell and is not returned.
func Parse(text string) []Block {
	var blocks []Block
	for _, line := range SplitLines(text) {
		if n, ok := ParseHeader(line); ok {
			blocks = append(blocks, Block{Header: line, Number: n})
			continue
		}
		if len(blocks) > 0 {
			last := &blocks[len(blocks)-1]
			last.Body = append(last.Body, line)
		}
	}
	return blocks
}

// Count returns the number of cells in text.
func Count(text string) int {
	count := 0
	for _, line := range SplitLines(text) {
		if _, ok := ParseHeader(line); ok {
			count++
		}
	}
	return count
}

// SplitLines splits text on newlines without keeping them. A trailing
// newline does not produce an extra empty line; empty text is a single
// empty line.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
