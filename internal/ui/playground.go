// Package ui implements the interactive playground: a terminal buffer
// wired to the lint orchestrator, showing highlights and status updates
// as you type.
package ui

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"relint/internal/buffer"
	"relint/internal/checker"
	"relint/internal/config"
	"relint/internal/editor"
	"relint/internal/highlight"
	"relint/internal/lint"
)

// PlaygroundSyntax is the syntax the playground buffer reports. The
// builtin checkers are bound to it.
const PlaygroundSyntax = "plain"

const playgroundBuffer buffer.ID = 1

type paintMsg struct{}

// playView is the playground's single buffer, implementing editor.View
// over the textarea content. Lint passes read it from a background
// goroutine while keystrokes mutate it, so access is serialized.
type playView struct {
	mu      sync.Mutex
	content string
	selLine int
	status  map[string]string
	drawn   map[string][]highlight.Region
	notify  chan struct{}
}

func newPlayView() *playView {
	return &playView{
		status: make(map[string]string),
		drawn:  make(map[string][]highlight.Region),
		notify: make(chan struct{}, 1),
	}
}

func (v *playView) ID() buffer.ID { return playgroundBuffer }

func (v *playView) Size() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.content)
}

func (v *playView) Content() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.content
}

func (v *playView) FilePath() string { return "" }

func (v *playView) Syntax() string { return PlaygroundSyntax }

func (v *playView) PrimarySelectionLine() (int, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selLine, true
}

func (v *playView) RegionsBySelector(string) []highlight.Region { return nil }

func (v *playView) DrawRegions(scope string, regions []highlight.Region) {
	v.mu.Lock()
	v.drawn[scope] = append([]highlight.Region(nil), regions...)
	v.mu.Unlock()
	v.wake()
}

func (v *playView) ClearRegions(scope string) {
	v.mu.Lock()
	delete(v.drawn, scope)
	v.mu.Unlock()
	v.wake()
}

func (v *playView) SetStatus(key, text string) {
	v.mu.Lock()
	v.status[key] = text
	v.mu.Unlock()
	v.wake()
}

func (v *playView) EraseStatus(key string) {
	v.mu.Lock()
	delete(v.status, key)
	v.mu.Unlock()
	v.wake()
}

func (v *playView) setContent(text string) {
	v.mu.Lock()
	v.content = text
	v.mu.Unlock()
}

func (v *playView) setSelLine(line int) {
	v.mu.Lock()
	v.selLine = line
	v.mu.Unlock()
}

func (v *playView) statusLine(key string) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.status[key]
}

func (v *playView) drawnRegions() map[string][]highlight.Region {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make(map[string][]highlight.Region, len(v.drawn))
	for scope, regions := range v.drawn {
		out[scope] = append([]highlight.Region(nil), regions...)
	}
	return out
}

// wake coalesces repaint requests so a burst of painter calls yields one
// frame.
func (v *playView) wake() {
	select {
	case v.notify <- struct{}{}:
	default:
	}
}

// playHost hosts the single playground view.
type playHost struct {
	view *playView
}

func (h *playHost) ViewByID(id buffer.ID) (editor.View, bool) {
	if id != playgroundBuffer {
		return nil, false
	}
	return h.view, true
}

func (h *playHost) Views() []editor.View { return []editor.View{h.view} }

// ShowErrorList is a no-op: the playground always shows its findings.
func (h *playHost) ShowErrorList(buffer.ID) {}

// Model is the Bubble Tea model for the playground.
type Model struct {
	ta      textarea.Model
	spinner spinner.Model
	orch    *lint.Orchestrator
	view    *playView
	host    *playHost
	width   int
	lastSel int
	done    bool
}

// NewPlayground wires an orchestrator with the builtin checkers to a
// fresh terminal buffer.
func NewPlayground(settings *config.Provider) *Model {
	registry := checker.NewRegistry()
	checker.RegisterBuiltins(registry, []string{PlaygroundSyntax})

	view := newPlayView()
	host := &playHost{view: view}
	orch := lint.New(lint.Options{
		Host:     host,
		Registry: registry,
		Settings: settings,
	})
	orch.OnNew(view)

	ta := textarea.New()
	ta.Placeholder = "type here; trailing spaces and TODOs get flagged"
	ta.ShowLineNumbers = true
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	return &Model{
		ta:      ta,
		spinner: sp,
		orch:    orch,
		view:    view,
		host:    host,
		width:   80,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick, m.listenForPaint())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		}
		before := m.ta.Value()
		var cmd tea.Cmd
		m.ta, cmd = m.ta.Update(msg)
		m.syncView(before)
		return m, cmd
	case paintMsg:
		return m, m.listenForPaint()
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.ta.SetWidth(msg.Width - 4)
		}
		if msg.Height > 0 {
			height := msg.Height - 10
			if height < 3 {
				height = 3
			}
			m.ta.SetHeight(height)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// syncView pushes the textarea state into the lint pipeline as editor
// events.
func (m *Model) syncView(before string) {
	after := m.ta.Value()
	if after != before {
		m.view.setContent(after)
		m.orch.OnModified(m.view)
	}
	if line := m.ta.Line(); line != m.lastSel {
		m.lastSel = line
		m.view.setSelLine(line)
		m.orch.OnSelectionChanged(m.view)
	}
}

func (m *Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := "relint playground"
	if m.done {
		header = fmt.Sprintf("done: %s", header)
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")
	b.WriteString(m.ta.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderMarks())
	b.WriteString(m.renderStatus())
	b.WriteString(lipgloss.NewStyle().Faint(true).Render("esc to quit"))
	b.WriteString("\n")
	return b.String()
}

// renderMarks lists the highlighted lines per scope, most severe first.
func (m *Model) renderMarks() string {
	drawn := m.view.drawnRegions()
	var b strings.Builder
	for _, scope := range []string{highlight.ScopeError, highlight.ScopeWarning, highlight.ScopeInfo} {
		regions := drawn[scope]
		if len(regions) == 0 {
			continue
		}
		lines := make([]int, 0, len(regions))
		seen := make(map[int]bool)
		for _, r := range regions {
			if !seen[r.Line] {
				seen[r.Line] = true
				lines = append(lines, r.Line)
			}
		}
		sort.Ints(lines)
		parts := make([]string, len(lines))
		for i, line := range lines {
			parts[i] = fmt.Sprintf("%d", line+1)
		}
		label := fmt.Sprintf("%8s", scopeLabel(scope))
		b.WriteString(fmt.Sprintf("  %s  lines %s\n",
			styleScope(scope).Render(label), strings.Join(parts, ", ")))
	}
	if b.Len() == 0 {
		return "  no findings\n"
	}
	return b.String()
}

func (m *Model) renderStatus() string {
	text := m.view.statusLine(lint.StatusKey)
	if text == "" {
		return "\n"
	}
	barStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("7")).
		Padding(0, 1)
	return barStyle.Render(truncate(text, m.width-4)) + "\n"
}

func (m *Model) listenForPaint() tea.Cmd {
	return func() tea.Msg {
		<-m.view.notify
		return paintMsg{}
	}
}

func scopeLabel(scope string) string {
	switch scope {
	case highlight.ScopeError:
		return "error"
	case highlight.ScopeWarning:
		return "warning"
	case highlight.ScopeInfo:
		return "info"
	default:
		return scope
	}
}

func styleScope(scope string) lipgloss.Style {
	switch scope {
	case highlight.ScopeError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case highlight.ScopeWarning:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	case highlight.ScopeInfo:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
