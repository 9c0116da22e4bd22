// Package ui provides the Bubble Tea terminal front end for react-repl.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lilactown/react-repl/internal/fiber"
	"github.com/lilactown/react-repl/internal/prefs"
	"github.com/lilactown/react-repl/internal/registry"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *registry.Store
	RootID    fiber.RootID
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *registry.Store
	rootID    fiber.RootID
	pollTick  time.Duration
	prefsPath string

	// UI state
	theme       Theme
	styles      Styles
	width       int
	height      int
	ready       bool
	focusedPane int // 0 = tree, 1 = detail

	// Tree state
	root   *fiber.Node
	rows   []row
	cursor int

	// Detail state
	detailViewport viewport.Model

	// Search state
	searchInput textinput.Model
	searching   bool
	lastQuery   string

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = time.Second
	}

	rootID := opts.RootID
	if rootID <= 0 {
		rootID = fiber.DefaultRoot
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(opts.ThemeName)

	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "component name"

	return Model{
		ctx:         ctx,
		store:       opts.Store,
		rootID:      rootID,
		pollTick:    pollTick,
		prefsPath:   prefsPath,
		theme:       theme,
		styles:      theme.Styles(),
		searchInput: input,
	}
}

type tickMsg time.Time

type rootMsg struct {
	root *fiber.Node
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func fetchRootCmd(store *registry.Store, id fiber.RootID) tea.Cmd {
	return func() tea.Msg { return rootMsg{root: store.Root(id)} }
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	if m.store != nil {
		cmds = append(cmds, fetchRootCmd(m.store, m.rootID))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(m.detailWidth(), m.paneHeight())
		} else {
			m.detailViewport.Width = m.detailWidth()
			m.detailViewport.Height = m.paneHeight()
		}
		m.ready = true
		m.refreshDetail()
		return m, nil

	case tickMsg:
		if m.store == nil {
			return m, tickCmd(m.pollTick)
		}
		return m, tea.Batch(tickCmd(m.pollTick), fetchRootCmd(m.store, m.rootID))

	case rootMsg:
		m.root = msg.root
		m.rows = flatten(m.root)
		m.cursor = clampCursor(m.cursor, len(m.rows))
		m.refreshDetail()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?", "h":
		m.showHelp = true
		return m, nil

	case "/":
		m.searching = true
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		return m, textinput.Blink

	case "n":
		m.jumpToMatch(m.lastQuery, m.cursor+1)
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		m.refreshDetail()
		return m, nil

	case "tab":
		m.focusedPane = (m.focusedPane + 1) % 2
		return m, nil

	case "r":
		if m.store == nil {
			return m, nil
		}
		m.rootID = nextRootID(m.store, m.rootID)
		m.cursor = 0
		return m, fetchRootCmd(m.store, m.rootID)

	case "up", "k":
		if m.focusedPane == 1 {
			m.detailViewport.ScrollUp(1)
			return m, nil
		}
		m.moveCursor(-1)
		return m, nil

	case "down", "j":
		if m.focusedPane == 1 {
			m.detailViewport.ScrollDown(1)
			return m, nil
		}
		m.moveCursor(1)
		return m, nil

	case "g", "home":
		m.moveCursorTo(0)
		return m, nil

	case "G", "end":
		m.moveCursorTo(len(m.rows) - 1)
		return m, nil
	}

	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.lastQuery = m.searchInput.Value()
		m.searchInput.Blur()
		m.jumpToMatch(m.lastQuery, m.cursor)
		return *m, nil
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		return *m, nil
	case "ctrl+c":
		return *m, tea.Quit
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return *m, cmd
}

func (m *Model) moveCursor(delta int) {
	m.moveCursorTo(m.cursor + delta)
}

func (m *Model) moveCursorTo(pos int) {
	m.cursor = clampCursor(pos, len(m.rows))
	m.refreshDetail()
}

// jumpToMatch moves the cursor to the first row at or after start whose
// label contains query, wrapping around once.
func (m *Model) jumpToMatch(query string, start int) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(m.rows) == 0 {
		return
	}
	for i := 0; i < len(m.rows); i++ {
		idx := (start + i) % len(m.rows)
		if strings.Contains(strings.ToLower(fiber.TypeLabel(m.rows[idx].node)), q) {
			m.moveCursorTo(idx)
			return
		}
	}
}

func (m *Model) refreshDetail() {
	if !m.ready {
		return
	}
	var n *fiber.Node
	if m.cursor < len(m.rows) {
		n = m.rows[m.cursor].node
	}
	m.detailViewport.SetContent(strings.Join(detailLines(n, m.styles), "\n"))
}

func nextRootID(store *registry.Store, current fiber.RootID) fiber.RootID {
	ids := store.RootIDs()
	if len(ids) == 0 {
		return current
	}
	for i, id := range ids {
		if id == current {
			return ids[(i+1)%len(ids)]
		}
	}
	return ids[0]
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderPanes(),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	title := fmt.Sprintf("react-repl · root %d", m.rootID)
	if m.root == nil {
		title += "  (waiting for first commit)"
	}
	return m.styles.Header.Width(m.width).Render(title)
}

func (m Model) renderFooter() string {
	if m.searching {
		return m.styles.Footer.Width(m.width).Render(m.searchInput.View())
	}
	hints := "j/k move  tab pane  / search  n next  r root  T theme  ? help  q quit"
	if m.lastQuery != "" {
		hints = fmt.Sprintf("search: %q  |  %s", m.lastQuery, hints)
	}
	return m.styles.Footer.Width(m.width).Render(hints)
}

func (m Model) renderPanes() string {
	treePane := m.styles.Pane
	detailPane := m.styles.Pane
	if m.focusedPane == 0 {
		treePane = m.styles.PaneFocus
	} else {
		detailPane = m.styles.PaneFocus
	}

	tree := treePane.Width(m.treeWidth()).Height(m.paneHeight()).Render(m.renderTree())
	detail := detailPane.Width(m.detailWidth()).Height(m.paneHeight()).Render(m.detailViewport.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, tree, detail)
}

func (m Model) renderTree() string {
	if len(m.rows) == 0 {
		return m.styles.MutedText.Render("no tree committed yet")
	}

	// Keep the selection visible; the window is derived from the cursor
	// on every render rather than tracked as state.
	visible := m.paneHeight()
	scroll := 0
	if m.cursor >= visible {
		scroll = m.cursor - visible + 1
	}

	var b strings.Builder
	for i := scroll; i < len(m.rows) && i < scroll+visible; i++ {
		line := rowLabel(m.rows[i])
		if i == m.cursor {
			line = m.styles.Selected.Render(line)
		} else if m.rows[i].node.IsText() {
			line = m.styles.MutedText.Render(line)
		} else {
			line = m.styles.Text.Render(line)
		}
		b.WriteString(line)
		if i < len(m.rows)-1 && i < scroll+visible-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderHelp() string {
	rows := []struct{ key, desc string }{
		{"j / k, ↓ / ↑", "move selection (or scroll detail pane)"},
		{"g / G", "jump to first / last node"},
		{"tab", "switch pane focus"},
		{"/", "search components by name"},
		{"n", "next search match"},
		{"r", "cycle application roots"},
		{"T", "cycle theme"},
		{"q, ctrl+c", "quit"},
	}
	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render("react-repl keys"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			m.styles.KindText.Render(fmt.Sprintf("%-14s", r.key)),
			m.styles.Text.Render(r.desc)))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.MutedText.Render("press any key to close"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

func (m Model) treeWidth() int {
	w := m.width / 2
	if w < 20 {
		w = 20
	}
	return w - 2
}

func (m Model) detailWidth() int {
	w := m.width - m.width/2
	if w < 20 {
		w = 20
	}
	return w - 2
}

func (m Model) paneHeight() int {
	h := m.height - 4 // header, footer, borders
	if h < 3 {
		h = 3
	}
	return h
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
