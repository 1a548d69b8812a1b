package drill

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	swdto "kickclock/internal/modules/stopwatch/dto"
	"kickclock/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

// ElementPort reads and writes the named form elements the stopwatches also
// write into.
type ElementPort interface {
	Value(id string) string
	SetValue(id, value string)
}

type StopwatchPort interface {
	Read(name string) (swdto.Readout, error)
	Press(name string) (swdto.Readout, error)
	Stop(name string) (swdto.Readout, error)
	Reset(name string) (swdto.Readout, error)
	Frame(name string, frame uint64) (swdto.Readout, bool, error)
}

// ─── layout ──────────────────────────────────────────────────────────────────

type FieldKind int

const (
	FieldNumeric FieldKind = iota
	FieldChoice
	FieldText
)

type FieldSpec struct {
	ID      string
	Label   string
	Kind    FieldKind
	Choices []string
	// Keep survives a save; identity fields are usually kept between kicks.
	Keep bool
}

// Spec describes one drill tab: its stopwatch, the element the stopwatch
// displays into, and the form fields logged with the kick.
type Spec struct {
	KickType  string
	Title     string
	Stopwatch string
	DisplayID string
	Fields    []FieldSpec
}

// ─── messages ────────────────────────────────────────────────────────────────

// FrameMsg is one tick of a stopwatch's display loop. Frame is the generation
// the loop was started for.
type FrameMsg struct {
	Stopwatch string
	Frame     uint64
}

// OpenKeypadMsg asks the app to open the keypad on a numeric field.
type OpenKeypadMsg struct {
	TargetID string
	Label    string
	Target   ElementTarget
}

// ElementTarget binds one element id to the keypad.
type ElementTarget struct {
	port ElementPort
	id   string
}

func (t ElementTarget) Value() string     { return t.port.Value(t.id) }
func (t ElementTarget) SetValue(v string) { t.port.SetValue(t.id, v) }
func (t ElementTarget) ID() string        { return t.id }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	spec      Spec
	elements  ElementPort
	watches   StopwatchPort
	interval  time.Duration
	readout   swdto.Readout
	focus     int
	editor    textinput.Model
	editing   bool
	looping   bool
	loopFrame uint64
	status    string
	width     int
	height    int
}

func New(spec Spec, elements ElementPort, watches StopwatchPort, interval time.Duration) Model {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	ti := textinput.New()
	ti.CharLimit = 64
	m := Model{
		spec:     spec,
		elements: elements,
		watches:  watches,
		interval: interval,
		editor:   ti,
	}
	if out, err := watches.Read(spec.Stopwatch); err == nil {
		m.readout = out
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case FrameMsg:
		if msg.Stopwatch != m.spec.Stopwatch {
			return m, nil
		}
		out, more, err := m.watches.Frame(msg.Stopwatch, msg.Frame)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.readout = out
		if !more {
			if msg.Frame == m.loopFrame {
				m.looping = false
			}
			return m, nil
		}
		return m, m.tick(msg.Frame)

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditor(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(m.spec.Title) + "\n\n")

	clock := theme.Clock
	if m.readout.Active {
		clock = theme.ClockRunning
	}
	display := m.elements.Value(m.spec.DisplayID)
	if display == "" {
		display = m.readout.Display
	}
	sb.WriteString(clock.Render(display) + "\n\n")

	for i, f := range m.spec.Fields {
		label := theme.FieldLabel.Render(f.Label)
		value := m.elements.Value(f.ID)
		switch {
		case m.editing && i == m.focus:
			value = m.editor.View()
		case value == "":
			value = theme.Muted.Render("·")
		}
		if f.Kind == FieldChoice && !m.editing {
			value = "‹ " + value + " ›"
		}
		line := label + theme.FieldValue.Render(value)
		if i == m.focus {
			line = theme.FieldFocused.Render("▸ ") + line
		} else {
			line = "  " + line
		}
		sb.WriteString(line + "\n")
	}

	sb.WriteString("\n" + theme.Muted.Render(m.hint()))
	if m.status != "" {
		sb.WriteString("\n" + theme.Hot.Render(m.status))
	}

	w := m.width - 2
	if w < 20 {
		w = 60
	}
	return theme.Pane.Width(w).Render(sb.String())
}

// Editing reports whether a text field has the keyboard; the app yields
// global keys while it does.
func (m Model) Editing() bool { return m.editing }

func (m Model) KickType() string { return m.spec.KickType }

func (m Model) Stopwatch() string { return m.spec.Stopwatch }

// FocusedField returns the focused field spec, if the form has any.
func (m Model) FocusedField() (FieldSpec, bool) {
	if m.focus < 0 || m.focus >= len(m.spec.Fields) {
		return FieldSpec{}, false
	}
	return m.spec.Fields[m.focus], true
}

// Form copies this drill's field values, keyed by element id.
func (m Model) Form() map[string]string {
	form := make(map[string]string, len(m.spec.Fields))
	for _, f := range m.spec.Fields {
		form[f.ID] = m.elements.Value(f.ID)
	}
	return form
}

// ClearForm empties every field not marked Keep and resets the stopwatch.
func (m Model) ClearForm() (Model, tea.Cmd) {
	for _, f := range m.spec.Fields {
		if !f.Keep {
			m.elements.SetValue(f.ID, "")
		}
	}
	return m.Reset()
}

// Press drives the stopwatch one step and starts a display loop when the
// press began a new run.
func (m Model) Press() (Model, tea.Cmd) {
	out, err := m.watches.Press(m.spec.Stopwatch)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.status = ""
	m.readout = out
	if !out.Active {
		m.looping = false
		return m, nil
	}
	if m.looping && m.loopFrame == out.Frame {
		return m, nil
	}
	m.looping = true
	m.loopFrame = out.Frame
	return m, m.tick(out.Frame)
}

// Stop ends the run from any phase. A punt stopped before hang keeps only
// the splits already recorded.
func (m Model) Stop() (Model, tea.Cmd) {
	out, err := m.watches.Stop(m.spec.Stopwatch)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.readout = out
	m.looping = false
	return m, nil
}

func (m Model) Reset() (Model, tea.Cmd) {
	out, err := m.watches.Reset(m.spec.Stopwatch)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.readout = out
	m.looping = false
	return m, nil
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) tick(frame uint64) tea.Cmd {
	name := m.spec.Stopwatch
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return FrameMsg{Stopwatch: name, Frame: frame}
	})
}

func (m Model) updateKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		return m.Press()
	case "s":
		return m.Stop()
	case "r":
		return m.Reset()
	case "up":
		if m.focus > 0 {
			m.focus--
		}
	case "down":
		if m.focus < len(m.spec.Fields)-1 {
			m.focus++
		}
	case "left":
		m.cycle(-1)
	case "right":
		m.cycle(1)
	case "k":
		f, ok := m.FocusedField()
		if !ok || f.Kind != FieldNumeric {
			return m, nil
		}
		target := ElementTarget{port: m.elements, id: f.ID}
		return m, func() tea.Msg {
			return OpenKeypadMsg{TargetID: f.ID, Label: f.Label, Target: target}
		}
	case "e":
		f, ok := m.FocusedField()
		if !ok {
			return m, nil
		}
		m.editing = true
		m.editor.SetValue(m.elements.Value(f.ID))
		m.editor.CursorEnd()
		return m, m.editor.Focus()
	case "x", "delete":
		if f, ok := m.FocusedField(); ok {
			m.elements.SetValue(f.ID, "")
		}
	}
	return m, nil
}

func (m Model) updateEditor(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if f, ok := m.FocusedField(); ok {
			m.elements.SetValue(f.ID, strings.TrimSpace(m.editor.Value()))
		}
		m.editing = false
		m.editor.Blur()
		return m, nil
	case "esc":
		m.editing = false
		m.editor.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *Model) cycle(step int) {
	f, ok := m.FocusedField()
	if !ok || f.Kind != FieldChoice || len(f.Choices) == 0 {
		return
	}
	cur := m.elements.Value(f.ID)
	idx := -1
	for i, c := range f.Choices {
		if c == cur {
			idx = i
			break
		}
	}
	n := len(f.Choices)
	switch {
	case idx < 0 && step > 0:
		idx = 0
	case idx < 0:
		idx = n - 1
	default:
		idx = (idx + step + n) % n
	}
	m.elements.SetValue(f.ID, f.Choices[idx])
}

func (m Model) hint() string {
	parts := []string{"space: " + m.pressHint(), "s: stop", "r: reset", "↑/↓: field"}
	if f, ok := m.FocusedField(); ok {
		switch f.Kind {
		case FieldNumeric:
			parts = append(parts, "k: keypad")
		case FieldChoice:
			parts = append(parts, "←/→: choose")
		}
	}
	parts = append(parts, "e: edit", "enter: save kick")
	return strings.Join(parts, "  ")
}

func (m Model) pressHint() string {
	if m.readout.Kind != "punt" {
		if m.readout.Active {
			return "stop"
		}
		return "start"
	}
	switch m.readout.Phase {
	case "idle", "":
		return "start"
	case "hang":
		return "stop"
	default:
		return fmt.Sprintf("end %s", m.readout.Phase)
	}
}
