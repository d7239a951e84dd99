package app

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"nbdiff/internal/celldiff"
)

var (
	styleCursor  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	styleCellBar = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	styleLineNo  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	styleHeader  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	styleRemoved = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	styleAdded   = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	styleDelSpan = lipgloss.NewStyle().Foreground(lipgloss.Color("224")).Background(lipgloss.Color("52"))
	styleInsSpan = lipgloss.NewStyle().Foreground(lipgloss.Color("194")).Background(lipgloss.Color("22"))
)

// renderPaneLines renders one visual line per aligned row for the given
// side, sized to the pane's content width. Rows with no line on this
// side render blank so the two panes stay row for row in step.
func (m *Model) renderPaneLines(side celldiff.Side, width int) []string {
	if width <= 0 {
		width = 1
	}
	lines := m.sideLines(side)

	numW := 3
	if d := digits(len(lines)); d > numW {
		numW = d
	}

	cellLo, cellHi, cellOK := m.activeCellRowRange()

	out := make([]string, 0, len(m.rows))
	for i, row := range m.rows {
		idx := row.Left
		if side == celldiff.Right {
			idx = row.Right
		}
		inCell := cellOK && i >= cellLo && i <= cellHi
		out = append(out, m.renderRowLine(lines, idx, side, width, numW, i == m.cursor, inCell))
	}
	return out
}

// activeCellRowRange is the aligned-row range covered by the cell under the
// cursor on the focused side. Both panes mark the same rows, which keeps
// the highlight aligned across the divider.
func (m *Model) activeCellRowRange() (int, int, bool) {
	idx := m.sideIndexAt(m.cursor, m.focus)
	if idx < 0 {
		return 0, 0, false
	}
	groups := m.leftGroups
	if m.focus == celldiff.Right {
		groups = m.rightGroups
	}
	g := celldiff.GroupAt(groups, idx)
	if g < 0 || groups[g].BlockID == nil {
		return 0, 0, false
	}

	lo, hi := -1, -1
	for r, row := range m.rows {
		v := row.Left
		if m.focus == celldiff.Right {
			v = row.Right
		}
		if groups[g].Contains(v) {
			if lo < 0 {
				lo = r
			}
			hi = r
		}
	}
	if lo < 0 {
		return 0, 0, false
	}
	return lo, hi, true
}

func (m *Model) renderRowLine(lines []celldiff.RenderLine, idx int, side celldiff.Side, width, numW int, isCursor, inCell bool) string {
	cursorMark := " "
	if isCursor {
		cursorMark = styleCursor.Render(">")
	}
	gutter := " "
	if inCell {
		gutter = styleCellBar.Render("│")
	}
	prefix := cursorMark + gutter
	lineWidth := max(1, width-2)

	if idx < 0 || idx >= len(lines) {
		return prefix + strings.Repeat(" ", lineWidth)
	}
	line := lines[idx]

	marker := byte(' ')
	switch line.Kind {
	case celldiff.LineRemoved:
		marker = '-'
	case celldiff.LineAdded:
		marker = '+'
	case celldiff.LineModified:
		if side == celldiff.Left {
			marker = '-'
		} else {
			marker = '+'
		}
	}

	body := m.renderLineBody(line)
	base := string(marker) + " " + body
	if m.cfg.ShowLineNumbers {
		num := strconv.Itoa(idx + 1)
		pad := numW - len(num)
		if pad < 0 {
			pad = 0
		}
		base = styleLineNo.Render(strings.Repeat(" ", pad)+num) + " " + base
	}

	return prefix + padToWidth(ansi.Truncate(base, lineWidth, ""), lineWidth)
}

func (m *Model) renderLineBody(line celldiff.RenderLine) string {
	switch line.Kind {
	case celldiff.LineUnchanged:
		if line.IsBlockHeader {
			return styleHeader.Render(line.Text())
		}
		return m.hl.Line(line.Text())

	case celldiff.LineRemoved:
		return styleRemoved.Render(line.Text())

	case celldiff.LineAdded:
		return styleAdded.Render(line.Text())
	}

	var b strings.Builder
	for _, span := range line.Spans {
		switch span.Kind {
		case celldiff.SpanDeleted:
			b.WriteString(styleDelSpan.Render(span.Text))
		case celldiff.SpanInserted:
			b.WriteString(styleInsSpan.Render(span.Text))
		default:
			b.WriteString(span.Text)
		}
	}
	return b.String()
}

func padToWidth(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func digits(n int) int {
	if n <= 0 {
		return 1
	}
	d := 0
	for n > 0 {
		d++
		n /= 10
	}
	return d
}
