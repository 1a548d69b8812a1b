package kicklog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	practicedto "kickclock/internal/modules/practice/dto"
	apperrors "kickclock/internal/platform/errors"
	"kickclock/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type PracticePort interface {
	Active(ctx context.Context) (practicedto.PracticeOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type PracticeLoadedMsg struct {
	Practice practicedto.PracticeOutput
	Err      error
}

// ─── list item ───────────────────────────────────────────────────────────────

type kickItem struct {
	kick practicedto.KickOutput
}

func (i kickItem) Title() string {
	return fmt.Sprintf("#%d %s  %s", i.kick.Seq, i.kick.Type, i.kick.Kicker)
}

func (i kickItem) Description() string {
	desc := "YL " + orDash(i.kick.YardLine)
	if i.kick.Distance != "" {
		desc += "  " + i.kick.Distance + " yds"
	}
	return desc
}

func (i kickItem) FilterValue() string { return i.kick.Type + " " + i.kick.Kicker }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     PracticePort
	list     list.Model
	practice practicedto.PracticeOutput
	active   bool
	preview  viewport.Model
	spinner  spinner.Model
	loading  bool
	width    int
	height   int
}

func New(port PracticePort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Crimson)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Crimson)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Kicks"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		preview: vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Refresh(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case PracticeLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.active = false
			m.practice = practicedto.PracticeOutput{}
			if errors.Is(msg.Err, apperrors.ErrNoActivePractice) {
				m.list.Title = "Kicks"
			} else {
				m.list.Title = "Kicks: " + msg.Err.Error()
			}
			cmds = append(cmds, m.list.SetItems(nil))
			m.preview.SetContent(m.renderDetail())
			return m, tea.Batch(cmds...)
		}
		m.active = true
		m.practice = msg.Practice
		m.list.Title = "Kicks · " + msg.Practice.Date
		items := make([]list.Item, len(msg.Practice.Kicks))
		for i, k := range msg.Practice.Kicks {
			items[i] = kickItem{kick: k}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.preview.SetContent(m.renderDetail())

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			m.preview.SetContent(m.renderDetail())
		}

		var vCmd tea.Cmd
		m.preview, vCmd = m.preview.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading practice…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(max(detailW-2, 1)).
		Height(max(m.height-2, 1)).
		Render(m.preview.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Refresh reloads the active practice.
func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg {
		p, err := m.port.Active(context.Background())
		return PracticeLoadedMsg{Practice: p, Err: err}
	}
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// SelectedKick returns the highlighted kick, if any.
func (m Model) SelectedKick() (practicedto.KickOutput, bool) {
	if item, ok := m.list.SelectedItem().(kickItem); ok {
		return item.kick, true
	}
	return practicedto.KickOutput{}, false
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = max(detailW-4, 1)
	m.preview.Height = max(m.height-4, 1)
}

func (m Model) renderDetail() string {
	if !m.active {
		return theme.Muted.Render("No active practice. Start one with :practice:start")
	}
	p := m.practice
	var sb strings.Builder
	title := p.Title
	if title == "" {
		title = "Practice"
	}
	sb.WriteString(theme.Title.Render(title) + "\n")
	sb.WriteString(theme.Muted.Render(p.Date+"  "+counts(p.Counts)) + "\n\n")

	k, ok := m.SelectedKick()
	if !ok {
		sb.WriteString(theme.Muted.Render("No kicks logged yet"))
		return sb.String()
	}
	sb.WriteString(theme.Hot.Render(fmt.Sprintf("#%d %s", k.Seq, k.Type)) + "\n")
	row := func(label, v string) {
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("%-17s", label)) + orDash(v) + "\n")
	}
	row("kicker", k.Kicker)
	row("longsnapper", k.Longsnapper)
	row("holder", k.Holder)
	row("yard line", k.YardLine)
	row("distance", k.Distance)
	keys := make([]string, 0, len(k.Detail))
	for key := range k.Detail {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		row(key, k.Detail[key])
	}
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%-17s", "logged")) + k.LoggedAt.Local().Format("15:04:05") + "\n")
	return sb.String()
}

func counts(c map[string]int) string {
	if len(c) == 0 {
		return "0 kicks"
	}
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s %d", k, c[k])
	}
	return strings.Join(parts, " · ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
