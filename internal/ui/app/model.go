package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	practicedto "kickclock/internal/modules/practice/dto"
	swdto "kickclock/internal/modules/stopwatch/dto"
	apperrors "kickclock/internal/platform/errors"
	"kickclock/internal/ui/components"
	"kickclock/internal/ui/theme"
	"kickclock/internal/ui/views/drill"
	"kickclock/internal/ui/views/kicklog"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type practicePort interface {
	Start(ctx context.Context, title, date string) (practicedto.PracticeOutput, error)
	LogKick(ctx context.Context, kickType string, form map[string]string) (practicedto.KickOutput, error)
	Active(ctx context.Context) (practicedto.PracticeOutput, error)
	End(ctx context.Context) (practicedto.EndOutput, error)
}

type stopwatchPort interface {
	Read(name string) (swdto.Readout, error)
	Press(name string) (swdto.Readout, error)
	Stop(name string) (swdto.Readout, error)
	Reset(name string) (swdto.Readout, error)
	Frame(name string, frame uint64) (swdto.Readout, bool, error)
	ResetAll()
}

// ─── async messages ──────────────────────────────────────────────────────────

type activeLoadedMsg struct {
	practice practicedto.PracticeOutput
	err      error
}

type practiceStartedMsg struct {
	practice practicedto.PracticeOutput
	err      error
}

type practiceEndedMsg struct {
	out practicedto.EndOutput
	err error
}

type kickSavedMsg struct {
	drill int
	kick  practicedto.KickOutput
	err   error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Press   key.Binding
	Stop    key.Binding
	Reset   key.Binding
	Field   key.Binding
	Choose  key.Binding
	Keypad  key.Binding
	Edit    key.Binding
	Save    key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Press:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/split/stop")),
		Stop:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop timer")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset timer")),
		Field:   key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "field")),
		Choose:  key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "choose")),
		Keypad:  key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "keypad")),
		Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit text")),
		Save:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save kick")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Press, k.Save, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Press, k.Stop, k.Reset},
		{k.Field, k.Choose, k.Keypad, k.Edit, k.Save},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the active
// practice, the keypad modal and the command palette. One tab per drill is
// followed by the kick log.
type Model struct {
	practice    practicePort
	stopwatches stopwatchPort
	log         zerolog.Logger

	drills  []drill.Model
	logView kicklog.Model

	activeTab int
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	keypad    components.Keypad
	current   practicedto.PracticeOutput
	hasActive bool
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	practice practicePort,
	stopwatches stopwatchPort,
	elements drill.ElementPort,
	specs []drill.Spec,
	frameInterval time.Duration,
	log zerolog.Logger,
) Model {
	drills := make([]drill.Model, len(specs))
	for i, spec := range specs {
		drills[i] = drill.New(spec, elements, stopwatches, frameInterval)
	}
	return Model{
		practice:    practice,
		stopwatches: stopwatches,
		log:         log,
		drills:      drills,
		logView:     kicklog.New(practice),
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		keypad:      components.NewKeypad(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.logView.Init(), m.loadActiveCmd())
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Frames belong to their drill whatever tab is showing; a running clock
	// keeps ticking while the coach fills in another form.
	if frame, ok := msg.(drill.FrameMsg); ok {
		for i := range m.drills {
			if m.drills[i].Stopwatch() == frame.Stopwatch {
				var cmd tea.Cmd
				m.drills[i], cmd = m.drills[i].Update(frame)
				return m, cmd
			}
		}
		return m, nil
	}

	// The keypad and then the palette intercept all input while open.
	if m.keypad.Visible() {
		if _, ok := msg.(tea.KeyMsg); ok {
			var cmd tea.Cmd
			m.keypad, cmd = m.keypad.Update(msg)
			return m, cmd
		}
	}
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case activeLoadedMsg:
		if msg.err != nil {
			if !errors.Is(msg.err, apperrors.ErrNoActivePractice) {
				m.status = "active practice check: " + msg.err.Error()
			}
			m.hasActive = false
		} else {
			m.hasActive = true
			m.current = msg.practice
			m.status = fmt.Sprintf("practice recovered: %s (%d kicks)", msg.practice.Date, len(msg.practice.Kicks))
		}
		return m, nil

	case practiceStartedMsg:
		if msg.err != nil {
			m.status = "practice start failed: " + msg.err.Error()
			return m, nil
		}
		m.hasActive = true
		m.current = msg.practice
		m.status = "practice started: " + practiceLabel(msg.practice)
		return m, m.logView.Refresh()

	case practiceEndedMsg:
		if msg.err != nil {
			m.status = "practice end failed: " + msg.err.Error()
			return m, nil
		}
		m.hasActive = false
		m.current = practicedto.PracticeOutput{}
		m.status = fmt.Sprintf("practice ended: %d kicks → %s", msg.out.Kicks, msg.out.Path)
		return m, m.logView.Refresh()

	case kickSavedMsg:
		if msg.err != nil {
			m.status = "save failed: " + msg.err.Error()
			return m, nil
		}
		m.log.Info().Str("kick_id", msg.kick.ID).Str("type", msg.kick.Type).Msg("kick saved from tui")
		m.status = fmt.Sprintf("saved #%d %s", msg.kick.Seq, msg.kick.Type)
		m.current.Kicks = append(m.current.Kicks, msg.kick)
		var cmd tea.Cmd
		if msg.drill >= 0 && msg.drill < len(m.drills) {
			m.drills[msg.drill], cmd = m.drills[msg.drill].ClearForm()
		}
		return m, tea.Batch(cmd, m.logView.Refresh())

	case drill.OpenKeypadMsg:
		m.keypad.Open(msg.TargetID, msg.Label, msg.Target)
		return m, nil

	case components.KeypadAppliedMsg:
		m.status = fmt.Sprintf("%s = %s", msg.TargetID, msg.Value)
		return m, nil

	case components.KeypadCancelMsg:
		m.status = "ready"
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the sub-view while it owns free typing.
		if m.subViewTyping() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % m.tabCount()
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + m.tabCount() - 1) % m.tabCount()
			return m, nil
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			return m, m.palette.Open()
		case "enter":
			if m.onDrill() {
				return m, m.saveKickCmd(m.activeTab)
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	if m.onDrill() {
		m.drills[m.activeTab], tabCmd = m.drills[m.activeTab].Update(msg)
	} else {
		m.logView, tabCmd = m.logView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	// Loaded practices and spinner ticks always reach the log, even from a
	// drill tab.
	if m.onDrill() && logOwned(msg) {
		var cmd tea.Cmd
		m.logView, cmd = m.logView.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.keypad.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.keypad.View())
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	case m.onDrill():
		content = m.drills[m.activeTab].View()
	default:
		content = m.logView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) renderTabBar() string {
	parts := make([]string, 0, m.tabCount())
	for i := 0; i < m.tabCount(); i++ {
		label := "Log"
		if i < len(m.drills) {
			label = m.drills[i].KickType()
		}
		if i == m.activeTab {
			parts = append(parts, theme.Hot.Render(" "+label+" "))
		} else {
			parts = append(parts, theme.Muted.Render(" "+label+" "))
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "kickclock  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.hasActive {
		left = theme.Hot.Render(fmt.Sprintf("● %s [%d]", practiceLabel(m.current), len(m.current.Kicks))) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ───────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "practice:start":
		title := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		return m, m.startPracticeCmd(title)

	case "practice:end":
		return m, m.endPracticeCmd()

	case "practice:refresh":
		return m, tea.Batch(m.loadActiveCmd(), m.logView.Refresh())

	case "kick:save":
		if !m.onDrill() {
			m.status = "switch to a drill tab to save a kick"
			return m, nil
		}
		return m, m.saveKickCmd(m.activeTab)

	case "timer:reset":
		if !m.onDrill() {
			m.status = "no timer on this tab"
			return m, nil
		}
		var cmd tea.Cmd
		m.drills[m.activeTab], cmd = m.drills[m.activeTab].Reset()
		m.status = "timer reset"
		return m, cmd

	case "timer:reset-all":
		m.stopwatches.ResetAll()
		for i := range m.drills {
			m.drills[i], _ = m.drills[i].Reset()
		}
		m.status = "all timers reset"
		return m, nil

	case "keypad":
		if !m.onDrill() {
			return m, nil
		}
		var cmd tea.Cmd
		m.drills[m.activeTab], cmd = m.drills[m.activeTab].Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
		return m, cmd

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m Model) tabCount() int { return len(m.drills) + 1 }

func (m Model) onDrill() bool { return m.activeTab < len(m.drills) }

// subViewTyping reports whether the active tab is taking free text, in which
// case global key bindings must yield.
func (m Model) subViewTyping() bool {
	if m.onDrill() {
		return m.drills[m.activeTab].Editing()
	}
	return m.logView.Filtering()
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	for i := range m.drills {
		m.drills[i], _ = m.drills[i].Update(sz)
	}
	m.logView, _ = m.logView.Update(sz)
}

func logOwned(msg tea.Msg) bool {
	switch msg.(type) {
	case kicklog.PracticeLoadedMsg, spinner.TickMsg:
		return true
	}
	return false
}

func practiceLabel(p practicedto.PracticeOutput) string {
	if p.Title == "" {
		return p.Date
	}
	return p.Title + " " + p.Date
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) loadActiveCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.practice.Active(context.Background())
		return activeLoadedMsg{practice: p, err: err}
	}
}

func (m Model) startPracticeCmd(title string) tea.Cmd {
	return func() tea.Msg {
		p, err := m.practice.Start(context.Background(), title, "")
		return practiceStartedMsg{practice: p, err: err}
	}
}

func (m Model) endPracticeCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.practice.End(context.Background())
		return practiceEndedMsg{out: out, err: err}
	}
}

// saveKickCmd snapshots the drill's form on the UI loop and logs it off-loop.
func (m Model) saveKickCmd(idx int) tea.Cmd {
	d := m.drills[idx]
	kickType := d.KickType()
	form := d.Form()
	return func() tea.Msg {
		k, err := m.practice.LogKick(context.Background(), kickType, form)
		return kickSavedMsg{drill: idx, kick: k, err: err}
	}
}
