// Package export renders a comparison for consumption outside the UI, as a
// unified diff or as a standalone HTML report.
package export

import (
	"fmt"
	"strings"

	sgdiff "github.com/sourcegraph/go-diff/diff"

	"nbdiff/internal/celldiff"
)

const contextLines = 3

// Unified renders the pair as a unified diff with standard context
// bridging. Identical inputs produce an empty string.
func Unified(leftName, rightName, leftText, rightText string) (string, error) {
	recs := flatten(celldiff.Script(leftText, rightText))
	hunks := buildHunks(recs, contextLines)
	if len(hunks) == 0 {
		return "", nil
	}

	fd := &sgdiff.FileDiff{
		OrigName: leftName,
		NewName:  rightName,
		Hunks:    hunks,
	}
	out, err := sgdiff.PrintMultiFileDiff([]*sgdiff.FileDiff{fd})
	if err != nil {
		return "", fmt.Errorf("printing unified diff: %w", err)
	}
	return string(out), nil
}

// record is one flattened script line with the 1-based positions both
// counters held when it was reached.
type record struct {
	prefix byte
	text   string
	oldNo  int
	newNo  int
}

func flatten(runs []celldiff.Run) []record {
	var recs []record
	oldNo, newNo := 1, 1
	for _, run := range runs {
		for _, line := range run.Lines {
			switch run.Op {
			case celldiff.RunEqual:
				recs = append(recs, record{' ', line, oldNo, newNo})
				oldNo++
				newNo++
			case celldiff.RunRemoved:
				recs = append(recs, record{'-', line, oldNo, newNo})
				oldNo++
			case celldiff.RunAdded:
				recs = append(recs, record{'+', line, oldNo, newNo})
				newNo++
			}
		}
	}
	return recs
}

// buildHunks windows the records around changes, bridging change groups
// whose context gap is at most twice the context size into one hunk.
func buildHunks(recs []record, ctx int) []*sgdiff.Hunk {
	var hunks []*sgdiff.Hunk
	n := len(recs)
	for i := 0; i < n; {
		if recs[i].prefix == ' ' {
			i++
			continue
		}

		start := max(i-ctx, 0)
		end := i
		for j := i; j < n; {
			if recs[j].prefix != ' ' {
				end = j + 1
				j++
				continue
			}
			k := j
			for k < n && recs[k].prefix == ' ' {
				k++
			}
			if k < n && k-j <= 2*ctx {
				j = k
				continue
			}
			break
		}

		stop := min(end+ctx, n)
		hunks = append(hunks, makeHunk(recs[start:stop]))
		i = stop
	}
	return hunks
}

func makeHunk(recs []record) *sgdiff.Hunk {
	var body strings.Builder
	origLines, newLines := 0, 0
	for _, r := range recs {
		body.WriteByte(r.prefix)
		body.WriteString(r.text)
		body.WriteByte('\n')
		if r.prefix != '+' {
			origLines++
		}
		if r.prefix != '-' {
			newLines++
		}
	}

	origStart := recs[0].oldNo
	if origLines == 0 {
		origStart--
	}
	newStart := recs[0].newNo
	if newLines == 0 {
		newStart--
	}

	return &sgdiff.Hunk{
		OrigStartLine: int32(origStart),
		OrigLines:     int32(origLines),
		NewStartLine:  int32(newStart),
		NewLines:      int32(newLines),
		Body:          []byte(body.String()),
	}
}
