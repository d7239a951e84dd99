package celldiff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"nbdiff/internal/cells"
)

// RunOp is the role of one run in a line-level edit script.
type RunOp int

const (
	RunEqual RunOp = iota
	RunRemoved
	RunAdded
)

// Run is a maximal group of consecutive lines sharing one edit role.
// Concatenating equal and removed runs replays the left text; equal and
// added runs replay the right text.
type Run struct {
	Op    RunOp
	Lines []string
}

// Script computes the line-level edit script between the two texts. The
// diff runs over whole lines (each distinct line mapped to a rune, then a
// standard Myers diff over the rune strings), so the result is minimal at
// line granularity and deterministic for identical inputs. A trailing
// newline on either text is not significant.
func Script(leftText, rightText string) []Run {
	dmp := diffmatchpatch.New()
	rLeft, rRight, lineArray := dmp.DiffLinesToRunes(normalizeEOL(leftText), normalizeEOL(rightText))
	diffs := dmp.DiffMainRunes(rLeft, rRight, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	decode := func(s string) []string {
		if s == "" {
			return nil
		}
		lines := make([]string, 0, len(s))
		for _, r := range s {
			idx := int(r)
			if idx < 0 || idx >= len(lineArray) {
				continue
			}
			lines = append(lines, strings.TrimSuffix(lineArray[idx], "\n"))
		}
		return lines
	}

	runs := make([]Run, 0, len(diffs))
	for _, d := range diffs {
		lines := decode(d.Text)
		if len(lines) == 0 {
			continue
		}
		op := RunEqual
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = RunRemoved
		case diffmatchpatch.DiffInsert:
			op = RunAdded
		}
		runs = append(runs, Run{Op: op, Lines: lines})
	}
	return runs
}

// normalizeEOL gives every line, including the last, a trailing newline so
// that "a\nb" and "a\nb\n" diff identically line by line.
func normalizeEOL(text string) string {
	return strings.Join(cells.SplitLines(text), "\n") + "\n"
}
