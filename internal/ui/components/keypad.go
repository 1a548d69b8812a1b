package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	keypad "kickclock/internal/modules/keypad/domain"
	"kickclock/internal/ui/theme"
)

// KeypadAppliedMsg is emitted after the buffer was written to its target.
type KeypadAppliedMsg struct {
	TargetID string
	Value    string
}

// KeypadCancelMsg is emitted when the keypad closes without applying.
type KeypadCancelMsg struct{}

var (
	keypadStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Lavender).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 2)

	keyStyle     = lipgloss.NewStyle().Foreground(theme.Text).Background(theme.Surface0).Padding(0, 1).MarginRight(1)
	bufferStyle  = lipgloss.NewStyle().Foreground(theme.Peach).Bold(true).Width(14).Align(lipgloss.Right)
	keypadLayout = [][]string{{"7", "8", "9"}, {"4", "5", "6"}, {"1", "2", "3"}, {"±", "0", "."}}
)

// Keypad is the numeric entry modal. It edits a copy of the target value and
// writes it back only on enter.
type Keypad struct {
	pad      keypad.Keypad
	targetID string
	label    string
}

func NewKeypad() Keypad { return Keypad{} }

func (k Keypad) Visible() bool { return k.pad.IsOpen() }

// Open binds the modal to target, identified as id and shown as label.
func (k *Keypad) Open(id, label string, target keypad.Target) {
	k.targetID = id
	k.label = label
	k.pad.Open(target)
}

func (k Keypad) Update(msg tea.Msg) (Keypad, tea.Cmd) {
	if !k.pad.IsOpen() {
		return k, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return k, nil
	}
	switch s := key.String(); s {
	case "esc":
		k.pad.Cancel()
		return k, func() tea.Msg { return KeypadCancelMsg{} }
	case "enter":
		id, value := k.targetID, k.pad.Value()
		k.pad.Apply()
		return k, func() tea.Msg { return KeypadAppliedMsg{TargetID: id, Value: value} }
	case "_", "s":
		k.pad.ToggleSign()
	case "backspace":
		k.pad.Backspace()
	case "c", "delete":
		k.pad.Clear()
	default:
		k.pad.Press(s)
	}
	return k, nil
}

func (k Keypad) View() string {
	if !k.pad.IsOpen() {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(k.label) + "\n\n")
	sb.WriteString(bufferStyle.Render(k.pad.Value()+"▏") + "\n\n")
	for _, row := range keypadLayout {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = keyStyle.Render(c)
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("-: sign  c: clear  ⌫  enter: apply  esc"))
	return keypadStyle.Render(sb.String())
}
