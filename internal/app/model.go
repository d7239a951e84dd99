package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"nbdiff/internal/celldiff"
	"nbdiff/internal/cells"
	"nbdiff/internal/clipboard"
	"nbdiff/internal/config"
	"nbdiff/internal/debuglog"
	"nbdiff/internal/export"
	"nbdiff/internal/notebook"
	"nbdiff/internal/session"
	"nbdiff/internal/syntax"
	"nbdiff/internal/watch"
)

type pairLoadedMsg struct {
	leftText  string
	rightText string
	err       error
}

type fileChangedMsg struct {
	path string
}

type watchStoppedMsg struct{}

type clipboardResultMsg struct {
	err error
}

type alertTickMsg struct{}

// Options configures a new Model.
type Options struct {
	LeftPath  string
	RightPath string
	Config    config.AppConfig
	Watch     bool

	// StateDir holds sessions.json; when empty the config directory is
	// used, and session persistence is skipped if that cannot be found.
	StateDir string
}

// Model is the Bubble Tea state container for the app.
type Model struct {
	keys      KeyMap
	cfg       config.AppConfig
	extractor notebook.Extractor
	hl        *syntax.Highlighter

	leftPath   string
	rightPath  string
	leftTitle  string
	rightTitle string

	width  int
	height int
	ready  bool

	leftText      string
	rightText     string
	leftModified  bool
	rightModified bool
	leftCells     int
	rightCells    int

	leftLines   []celldiff.RenderLine
	rightLines  []celldiff.RenderLine
	rows        []celldiff.Row
	leftGroups  []celldiff.Group
	rightGroups []celldiff.Group

	focus      celldiff.Side
	cursor     int
	leftView   viewport.Model
	rightView  viewport.Model
	diffDirty  bool
	leftWidth  int
	rightWidth int
	syncScroll bool
	splitRatio float64
	helpOpen   bool

	store      session.Store
	sessionKey string
	persist    bool

	watcher *watch.Watcher

	renameActive bool
	renameSide   celldiff.Side
	renameInput  textinput.Model

	deleteConfirm bool
	deleteSide    celldiff.Side
	deleteBlock   int

	alertMsg   string
	alertUntil time.Time

	loading bool
}

func NewModel(opts Options) Model {
	cfg := opts.Config

	stateDir := opts.StateDir
	if stateDir == "" {
		if p, err := config.DefaultPath(); err == nil {
			stateDir = filepath.Dir(p)
		}
	}

	renameInput := textinput.New()
	renameInput.Prompt = ""
	renameInput.Placeholder = "Pane title"
	renameInput.CharLimit = 200
	renameInput.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
	renameInput.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	m := Model{
		keys:        defaultKeyMap(),
		cfg:         cfg,
		extractor:   notebook.NewExtractor(cfg.ExtractorCommand),
		hl:          syntax.NewHighlighter(cfg.Theme),
		leftPath:    opts.LeftPath,
		rightPath:   opts.RightPath,
		leftTitle:   filepath.Base(opts.LeftPath),
		rightTitle:  filepath.Base(opts.RightPath),
		focus:       celldiff.Left,
		syncScroll:  cfg.SyncScroll,
		splitRatio:  cfg.SplitRatio,
		renameInput: renameInput,
		diffDirty:   true,
		leftWidth:   -1,
		rightWidth:  -1,
		loading:     true,
	}

	if stateDir != "" {
		m.store = session.NewStore(stateDir)
		m.sessionKey = session.Key(opts.LeftPath, opts.RightPath)
		m.persist = true
		if st, ok := m.store.Get(m.sessionKey); ok {
			if st.LeftTitle != "" {
				m.leftTitle = st.LeftTitle
			}
			if st.RightTitle != "" {
				m.rightTitle = st.RightTitle
			}
			if st.SplitRatio >= config.MinSplitRatio && st.SplitRatio <= config.MaxSplitRatio {
				m.splitRatio = st.SplitRatio
			}
			if st.SyncScroll != nil {
				m.syncScroll = *st.SyncScroll
			}
		}
	}

	if opts.Watch {
		w, err := watch.New(opts.LeftPath, opts.RightPath)
		if err != nil {
			m.setAlert(fmt.Sprintf("watch disabled: %v", err))
		} else {
			m.watcher = w
		}
	}

	m.leftView = viewport.New(1, 1)
	m.rightView = viewport.New(1, 1)
	m.leftView.SetContent("Loading files...")
	m.rightView.SetContent("Loading files...")
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadPairCmd(), alertTickCmd()}
	if m.watcher != nil {
		cmds = append(cmds, m.watchCmd())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizePanes()
		m.refreshDiffContent()
		return m, nil

	case pairLoadedMsg:
		m.loading = false
		if msg.err != nil {
			errText := fmt.Sprintf("Failed to load files:\n%v", msg.err)
			m.leftLines = nil
			m.rightLines = nil
			m.rows = nil
			m.leftGroups = nil
			m.rightGroups = nil
			m.leftView.SetContent(errText)
			m.rightView.SetContent(errText)
			m.setAlert(fmt.Sprintf("load failed: %v", msg.err))
			return m, nil
		}
		m.leftText = msg.leftText
		m.rightText = msg.rightText
		m.leftModified = false
		m.rightModified = false
		m.rebuild()
		m.refreshDiffContent()
		return m, nil

	case fileChangedMsg:
		m.loading = true
		m.setAlert(fmt.Sprintf("%s changed, reloading.", filepath.Base(msg.path)))
		return m, tea.Batch(m.loadPairCmd(), m.watchCmd())

	case watchStoppedMsg:
		return m, nil

	case clipboardResultMsg:
		if msg.err != nil {
			m.setAlert(fmt.Sprintf("copy failed: %v", msg.err))
			return m, nil
		}
		m.setAlert("Copied unified diff to clipboard.")
		return m, nil

	case alertTickMsg:
		if m.alertMsg != "" && !m.alertUntil.IsZero() && time.Now().After(m.alertUntil) {
			m.alertMsg = ""
			m.alertUntil = time.Time{}
		}
		return m, alertTickCmd()

	case tea.KeyMsg:
		if m.renameActive {
			return m.handleRenameInput(msg)
		}
		if m.deleteConfirm {
			return m.handleDeleteConfirm(msg)
		}

		if key.Matches(msg, m.keys.Quit) {
			if m.persist {
				m.persistSession()
			}
			if m.watcher != nil {
				m.watcher.Close()
			}
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Help) {
			m.helpOpen = !m.helpOpen
			return m, nil
		}
		if key.Matches(msg, m.keys.Reload) {
			m.loading = true
			return m, m.loadPairCmd()
		}
		if key.Matches(msg, m.keys.ToggleFocus) {
			if m.focus == celldiff.Left {
				m.focus = celldiff.Right
			} else {
				m.focus = celldiff.Left
			}
			return m, nil
		}
		if isRuneKey(msg, "h") {
			m.focus = celldiff.Left
			return m, nil
		}
		if isRuneKey(msg, "l") {
			m.focus = celldiff.Right
			return m, nil
		}
		if key.Matches(msg, m.keys.ToggleSync) {
			m.syncScroll = !m.syncScroll
			if m.syncScroll {
				if m.focus == celldiff.Left {
					m.rightView.SetYOffset(m.leftView.YOffset)
				} else {
					m.leftView.SetYOffset(m.rightView.YOffset)
				}
				m.setAlert("Scroll sync on.")
			} else {
				m.setAlert("Scroll sync off.")
			}
			return m, nil
		}
		if key.Matches(msg, m.keys.GrowSplit) {
			m.adjustSplit(splitRatioStep)
			return m, nil
		}
		if key.Matches(msg, m.keys.ShrinkSplit) {
			m.adjustSplit(-splitRatioStep)
			return m, nil
		}
		if key.Matches(msg, m.keys.Rename) {
			return m.startRename()
		}
		if key.Matches(msg, m.keys.CopyDiff) {
			if !m.hasChanges() {
				m.setAlert("No changes to copy.")
				return m, nil
			}
			return m, m.copyDiffCmd()
		}

		return m.updateDiffKeys(msg)
	}

	return m, nil
}

func (m Model) updateDiffKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.rows) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.scrollWindow(1)
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp):
		m.scrollWindow(-1)
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.pageMove(1)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.pageMove(-1)
		return m, nil

	case key.Matches(msg, m.keys.HalfDown):
		m.halfPageMove(1)
		return m, nil

	case key.Matches(msg, m.keys.HalfUp):
		m.halfPageMove(-1)
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.diffDirty = true
		m.refreshDiffContent()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(m.rows) - 1
		m.diffDirty = true
		m.refreshDiffContent()
		return m, nil

	case key.Matches(msg, m.keys.NextCell):
		m.jumpCell(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevCell):
		m.jumpCell(-1)
		return m, nil

	case key.Matches(msg, m.keys.DeleteCell):
		return m.startDeleteCell()
	}
	return m, nil
}

func (m Model) startDeleteCell() (tea.Model, tea.Cmd) {
	idx := m.sideIndexAt(m.cursor, m.focus)
	if idx < 0 {
		m.setAlert("No line on this side under the cursor.")
		return m, nil
	}
	lines := m.sideLines(m.focus)
	id := lines[idx].BlockID
	if id == nil {
		m.setAlert("No cell under the cursor.")
		return m, nil
	}

	m.deleteConfirm = true
	m.deleteSide = m.focus
	m.deleteBlock = *id
	return m, nil
}

func (m Model) handleDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.deleteConfirm = false
		return m, nil
	case tea.KeyEnter:
		m.deleteConfirm = false
		m.performDelete()
		return m, nil
	case tea.KeyRunes:
		switch msg.String() {
		case "y", "Y":
			m.deleteConfirm = false
			m.performDelete()
			return m, nil
		case "n", "N":
			m.deleteConfirm = false
			return m, nil
		}
	}
	return m, nil
}

func (m *Model) performDelete() {
	text := m.leftText
	if m.deleteSide == celldiff.Right {
		text = m.rightText
	}

	next := cells.Delete(text, m.deleteBlock)
	if next == text {
		m.setAlert(fmt.Sprintf("Cell %d is out of range.", m.deleteBlock+1))
		return
	}

	if m.deleteSide == celldiff.Left {
		m.leftText = next
		m.leftModified = true
	} else {
		m.rightText = next
		m.rightModified = true
	}
	m.rebuild()
	m.refreshDiffContent()
	m.setAlert(fmt.Sprintf("Deleted cell %d from the %s pane.", m.deleteBlock+1, m.deleteSide))
}

func (m Model) startRename() (tea.Model, tea.Cmd) {
	m.renameActive = true
	m.renameSide = m.focus
	title := m.leftTitle
	if m.focus == celldiff.Right {
		title = m.rightTitle
	}
	m.renameInput.SetValue(title)
	m.renameInput.CursorEnd()
	cmd := m.renameInput.Focus()
	return m, cmd
}

func (m Model) handleRenameInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.renameActive = false
		m.renameInput.SetValue("")
		m.renameInput.Blur()
		return m, nil

	case tea.KeyEnter:
		title := strings.TrimSpace(m.renameInput.Value())
		m.renameActive = false
		m.renameInput.SetValue("")
		m.renameInput.Blur()
		if title == "" {
			m.setAlert("Pane title unchanged.")
			return m, nil
		}
		if m.renameSide == celldiff.Left {
			m.leftTitle = title
		} else {
			m.rightTitle = title
		}
		if m.persist {
			m.persistSession()
		}
		m.setAlert(fmt.Sprintf("Renamed %s pane to %q.", m.renameSide, title))
		return m, nil
	}

	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	help := m.helpText()
	footerHelpPlain := truncateLinesToWidth(help, m.width)
	footer := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render(footerHelpPlain)
	footerHeight := lipgloss.Height(footer)

	dock := ""
	dockHeight := 0
	if m.renameActive {
		dock = m.renderRenameDock()
		dockHeight = lipgloss.Height(dock)
	} else if m.alertMsg != "" {
		dock = m.renderAlertDock()
		dockHeight = lipgloss.Height(dock)
	}

	leftW, rightW := paneWidths(m.width, m.splitRatio)
	// lipgloss Height applies to content height; borders add 2 more rows.
	paneContentHeight := max(1, m.height-footerHeight-dockHeight-2)
	if m.leftView.Width != max(1, leftW) || m.rightView.Width != max(1, rightW) {
		m.diffDirty = true
	}
	m.leftView.Width = max(1, leftW)
	m.rightView.Width = max(1, rightW)
	m.leftView.Height = max(1, paneContentHeight-2)
	m.rightView.Height = max(1, paneContentHeight-2)
	m.refreshDiffContent()

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderSidePane(celldiff.Left, leftW, paneContentHeight, false),
		m.renderSidePane(celldiff.Right, rightW, paneContentHeight, true),
	)
	if dock != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, dock)
	}
	if m.deleteConfirm {
		body = overlayCentered(body, m.renderDeleteConfirmModal(), m.width, lipgloss.Height(body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (m Model) helpText() string {
	sync := "sync on"
	if !m.syncScroll {
		sync = "sync off"
	}
	if !m.helpOpen {
		return sync + " | tab/h/l focus | j/k move | ctrl-d/u half page | ctrl-f/b page | n/p cell | d delete cell | R rename | s sync | [/] split | y copy diff | r reload | ? help | q quit"
	}
	return strings.Join([]string{
		"Global: q quit, tab/h/l switch pane focus, r reload files, s toggle scroll sync (" + sync + "), ? toggle help",
		"Movement: j/k move cursor, ctrl-e/ctrl-y scroll, ctrl-d/ctrl-u half page, ctrl-f/ctrl-b page, g/G top/bottom",
		"Cells: n/p next/previous cell, d delete cell under cursor",
		"Panes: [/] adjust split, R rename focused pane, y copy unified diff to clipboard",
	}, "\n")
}

func (m Model) paneTitle(side celldiff.Side) string {
	label := "Left"
	title := m.leftTitle
	count := m.leftCells
	modified := m.leftModified
	if side == celldiff.Right {
		label, title, count, modified = "Right", m.rightTitle, m.rightCells, m.rightModified
	}

	s := fmt.Sprintf("%s: %s", label, title)
	if modified {
		s += " *"
	}
	if count == 1 {
		s += " (1 cell)"
	} else if count > 1 {
		s += fmt.Sprintf(" (%d cells)", count)
	}
	if m.loading {
		s += " (loading...)"
	}
	return s
}

func (m Model) renderSidePane(side celldiff.Side, width, height int, withRightBorder bool) string {
	border := lipgloss.NormalBorder()
	borderColor := lipgloss.Color("245")
	if m.focus == side {
		borderColor = lipgloss.Color("39")
	}

	paneStyle := lipgloss.NewStyle().
		Width(max(1, width)).
		Height(max(1, height)).
		Border(border, true, withRightBorder, true, true).
		BorderForeground(borderColor)

	view := m.leftView.View()
	if side == celldiff.Right {
		view = m.rightView.View()
	}

	innerW := max(1, width)
	title := ansi.Truncate(m.paneTitle(side), innerW, "")
	header := lipgloss.NewStyle().Bold(true).Width(innerW).MaxWidth(innerW).Render(title)
	return paneStyle.Render(header + "\n\n" + view)
}

func (m Model) renderRenameDock() string {
	title := "Rename Left Pane"
	if m.renameSide == celldiff.Right {
		title = "Rename Right Pane"
	}

	contentW := max(10, m.width-2)
	inputWidth := max(1, contentW-9)
	input := m.renameInput
	input.Width = inputWidth
	inputBox := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1).
		Render(input.View())
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render("Enter save | Esc cancel")

	body := strings.Join([]string{inputBox, "", hint}, "\n")
	return m.renderDockPanel(title, lipgloss.Color("39"), lipgloss.Color("39"), body)
}

func (m Model) renderAlertDock() string {
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render("Auto-hides after 3s")
	body := strings.Join([]string{
		m.alertMsg,
		"",
		hint,
	}, "\n")
	return m.renderDockPanel("Notice", lipgloss.Color("220"), lipgloss.Color("220"), body)
}

func (m Model) renderDeleteConfirmModal() string {
	body := strings.Join([]string{
		fmt.Sprintf("Delete cell %d from the %s pane?", m.deleteBlock+1, m.deleteSide),
		"",
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render("Y/Enter confirm | N/Esc cancel"),
	}, "\n")

	width := 54
	if m.width > 0 && m.width-6 < width {
		width = max(24, m.width-6)
	}

	title := lipgloss.NewStyle().
		Width(max(1, width-2)).
		Padding(0, 1).
		Bold(true).
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("196")).
		Render("Delete Cell")

	bodyBlock := lipgloss.NewStyle().
		Width(max(1, width-2)).
		Padding(1, 2).
		Render(body)

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("196")).
		Render(title + "\n" + bodyBlock)
}

func (m Model) renderDockPanel(title string, titleColor, borderColor lipgloss.Color, body string) string {
	contentW := max(10, m.width-2)
	titleText := ansi.Truncate(title, max(1, contentW-2), "")
	titleBar := lipgloss.NewStyle().
		Width(contentW).
		Padding(0, 1).
		Bold(true).
		Foreground(lipgloss.Color("230")).
		Background(titleColor).
		Render(titleText)

	bodyBlock := lipgloss.NewStyle().
		Width(contentW).
		Padding(1, 2).
		Render(body)

	return lipgloss.NewStyle().
		Width(contentW).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Render(titleBar + "\n" + bodyBlock)
}

func (m *Model) resizePanes() {
	leftW, rightW := paneWidths(m.width, m.splitRatio)
	m.leftView.Width = max(1, leftW)
	m.rightView.Width = max(1, rightW)
	m.leftView.Height = max(1, m.height-6)
	m.rightView.Height = max(1, m.height-6)
	m.diffDirty = true
}

func (m *Model) rebuild() {
	m.leftLines = celldiff.ForSide(m.leftText, m.rightText, celldiff.Left)
	m.rightLines = celldiff.ForSide(m.leftText, m.rightText, celldiff.Right)
	m.rows = celldiff.AlignRows(m.leftLines, m.rightLines)
	m.leftGroups = celldiff.GroupByBlock(m.leftLines)
	m.rightGroups = celldiff.GroupByBlock(m.rightLines)
	m.leftCells = cells.Count(m.leftText)
	m.rightCells = cells.Count(m.rightText)
	m.clampCursor()
	m.diffDirty = true
}

func (m *Model) refreshDiffContent() {
	if len(m.rows) == 0 {
		return
	}
	m.clampCursor()
	if !m.diffDirty && m.leftWidth == m.leftView.Width && m.rightWidth == m.rightView.Width {
		m.ensureCursorVisible()
		return
	}

	m.leftView.SetContent(strings.Join(m.renderPaneLines(celldiff.Left, m.leftView.Width), "\n"))
	m.rightView.SetContent(strings.Join(m.renderPaneLines(celldiff.Right, m.rightView.Width), "\n"))
	m.leftWidth = m.leftView.Width
	m.rightWidth = m.rightView.Width
	m.diffDirty = false
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	fv := m.focusedView()
	if fv.Height <= 0 {
		return
	}
	if m.cursor < fv.YOffset {
		m.setViewOffsets(m.cursor)
		return
	}
	bottom := fv.YOffset + fv.Height - 1
	if m.cursor > bottom {
		m.setViewOffsets(m.cursor - fv.Height + 1)
	}
}

func (m *Model) setViewOffsets(top int) {
	if m.syncScroll {
		m.leftView.SetYOffset(top)
		m.rightView.SetYOffset(top)
		return
	}
	if m.focus == celldiff.Left {
		m.leftView.SetYOffset(top)
	} else {
		m.rightView.SetYOffset(top)
	}
}

func (m *Model) focusedView() *viewport.Model {
	if m.focus == celldiff.Left {
		return &m.leftView
	}
	return &m.rightView
}

func (m *Model) moveCursor(delta int) {
	if len(m.rows) == 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	m.clampCursor()
	m.diffDirty = true
	m.refreshDiffContent()
}

func (m *Model) pageMove(direction int) {
	if len(m.rows) == 0 || direction == 0 {
		return
	}
	visible := m.focusedView().Height
	if visible <= 0 {
		return
	}
	// Step one line short of a page so the edge rows stay in view.
	step := max(1, visible-1)
	m.cursor += direction * step
	m.clampCursor()
	m.diffDirty = true
	m.refreshDiffContent()
}

func (m *Model) halfPageMove(direction int) {
	if len(m.rows) == 0 || direction == 0 {
		return
	}
	visible := m.focusedView().Height
	if visible <= 0 {
		return
	}
	m.cursor += direction * max(1, visible/2)
	m.clampCursor()
	m.diffDirty = true
	m.refreshDiffContent()
}

func (m *Model) scrollWindow(delta int) {
	if delta == 0 || len(m.rows) == 0 {
		return
	}
	fv := m.focusedView()
	visible := fv.Height
	if visible <= 0 {
		visible = 1
	}

	maxTop := len(m.rows) - visible
	if maxTop < 0 {
		maxTop = 0
	}
	oldTop := fv.YOffset
	newTop := oldTop + delta
	if newTop < 0 {
		newTop = 0
	}
	if newTop > maxTop {
		newTop = maxTop
	}
	if newTop == oldTop {
		return
	}

	rel := m.cursor - oldTop
	if rel < 0 {
		rel = 0
	}
	if rel >= visible {
		rel = visible - 1
	}
	m.cursor = newTop + rel
	m.clampCursor()
	m.diffDirty = true
	m.refreshDiffContent()
	m.setViewOffsets(newTop)
}

func (m *Model) clampCursor() {
	if len(m.rows) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
}

// jumpCell moves the cursor to the header of the next or previous cell
// on the focused side, skipping lines outside any cell.
func (m *Model) jumpCell(direction int) {
	groups := m.leftGroups
	if m.focus == celldiff.Right {
		groups = m.rightGroups
	}
	if len(groups) == 0 {
		return
	}

	idx := m.nearestSideIndex(direction)
	if idx < 0 {
		return
	}
	cur := celldiff.GroupAt(groups, idx)
	if cur < 0 {
		return
	}

	for g := cur + direction; g >= 0 && g < len(groups); g += direction {
		if groups[g].BlockID == nil {
			continue
		}
		if row := m.rowForSideIndex(groups[g].Start, m.focus); row >= 0 {
			m.cursor = row
			m.diffDirty = true
			m.refreshDiffContent()
		}
		return
	}
}

// nearestSideIndex resolves the cursor row to a line index on the focused
// side, scanning past padding rows in the direction of travel.
func (m *Model) nearestSideIndex(direction int) int {
	step := 1
	if direction < 0 {
		step = -1
	}
	for r := m.cursor; r >= 0 && r < len(m.rows); r += step {
		if idx := m.sideIndexAt(r, m.focus); idx >= 0 {
			return idx
		}
	}
	return -1
}

func (m *Model) sideIndexAt(row int, side celldiff.Side) int {
	if row < 0 || row >= len(m.rows) {
		return -1
	}
	if side == celldiff.Left {
		return m.rows[row].Left
	}
	return m.rows[row].Right
}

func (m *Model) rowForSideIndex(idx int, side celldiff.Side) int {
	for i, row := range m.rows {
		v := row.Right
		if side == celldiff.Left {
			v = row.Left
		}
		if v == idx {
			return i
		}
	}
	return -1
}

func (m *Model) sideLines(side celldiff.Side) []celldiff.RenderLine {
	if side == celldiff.Left {
		return m.leftLines
	}
	return m.rightLines
}

func (m Model) hasChanges() bool {
	for _, l := range m.leftLines {
		if l.Kind != celldiff.LineUnchanged {
			return true
		}
	}
	for _, l := range m.rightLines {
		if l.Kind != celldiff.LineUnchanged {
			return true
		}
	}
	return false
}

func (m *Model) adjustSplit(delta float64) {
	r := m.splitRatio + delta
	if r < config.MinSplitRatio {
		r = config.MinSplitRatio
	}
	if r > config.MaxSplitRatio {
		r = config.MaxSplitRatio
	}
	if r == m.splitRatio {
		return
	}
	m.splitRatio = r
	m.resizePanes()
	m.refreshDiffContent()
}

func (m *Model) persistSession() {
	sync := m.syncScroll
	st := session.State{
		LeftTitle:  m.leftTitle,
		RightTitle: m.rightTitle,
		SplitRatio: m.splitRatio,
		SyncScroll: &sync,
	}
	if err := m.store.Put(m.sessionKey, st); err != nil {
		debuglog.Logf("session save: %v", err)
	}
}

func (m Model) loadPairCmd() tea.Cmd {
	ex := m.extractor
	leftPath, rightPath := m.leftPath, m.rightPath
	return func() tea.Msg {
		ctx := context.Background()
		leftText, err := notebook.Load(ctx, ex, leftPath)
		if err != nil {
			return pairLoadedMsg{err: err}
		}
		rightText, err := notebook.Load(ctx, ex, rightPath)
		if err != nil {
			return pairLoadedMsg{err: err}
		}
		return pairLoadedMsg{leftText: leftText, rightText: rightText}
	}
}

func (m Model) watchCmd() tea.Cmd {
	w := m.watcher
	return func() tea.Msg {
		path, ok := <-w.Events()
		if !ok {
			return watchStoppedMsg{}
		}
		return fileChangedMsg{path: path}
	}
}

func (m Model) copyDiffCmd() tea.Cmd {
	leftName, rightName := m.leftTitle, m.rightTitle
	leftText, rightText := m.leftText, m.rightText
	return func() tea.Msg {
		out, err := export.Unified(leftName, rightName, leftText, rightText)
		if err != nil {
			return clipboardResultMsg{err: err}
		}
		return clipboardResultMsg{err: clipboard.CopyText(context.Background(), out)}
	}
}

func isRuneKey(msg tea.KeyMsg, value string) bool {
	return msg.Type == tea.KeyRunes && msg.String() == value
}

func overlayCentered(base, overlay string, width, height int) string {
	baseLines := normalizeCanvas(base, width, height)
	overlayLines := strings.Split(overlay, "\n")
	overlayW := lipgloss.Width(overlay)
	overlayH := len(overlayLines)
	if overlayW <= 0 || overlayH <= 0 {
		return strings.Join(baseLines, "\n")
	}

	x := max(0, (width-overlayW)/2)
	y := max(0, (height-overlayH)/2)
	for i, ol := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		baseLines[row] = overlayLine(baseLines[row], ol, x, overlayW, width)
	}
	return strings.Join(baseLines, "\n")
}

func normalizeCanvas(s string, width, height int) []string {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	raw := strings.Split(s, "\n")
	lines := make([]string, 0, height)
	for i := 0; i < height; i++ {
		line := ""
		if i < len(raw) {
			line = raw[i]
		}
		w := lipgloss.Width(line)
		switch {
		case w > width:
			lines = append(lines, ansi.Truncate(line, width, ""))
		case w < width:
			lines = append(lines, line+strings.Repeat(" ", width-w))
		default:
			lines = append(lines, line)
		}
	}
	return lines
}

func overlayLine(baseLine, overlayLine string, x, overlayW, totalW int) string {
	if overlayW <= 0 {
		return baseLine
	}
	if x < 0 {
		x = 0
	}
	if x >= totalW {
		return baseLine
	}
	if x+overlayW > totalW {
		overlayLine = ansi.Truncate(overlayLine, totalW-x, "")
		overlayW = lipgloss.Width(overlayLine)
		if overlayW <= 0 {
			return baseLine
		}
	}

	plain := []rune(ansi.Strip(baseLine))
	if len(plain) < totalW {
		plain = append(plain, []rune(strings.Repeat(" ", totalW-len(plain)))...)
	}
	left := string(plain[:x])
	rightStart := x + overlayW
	if rightStart > len(plain) {
		rightStart = len(plain)
	}
	right := string(plain[rightStart:])
	return left + overlayLine + right
}

func alertTickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return alertTickMsg{}
	})
}

func (m *Model) setAlert(msg string) {
	m.alertMsg = msg
	m.alertUntil = time.Now().Add(3 * time.Second)
}

func truncateLinesToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		runes := []rune(line)
		if len(runes) > width {
			lines[i] = string(runes[:width])
		}
	}
	return strings.Join(lines, "\n")
}
