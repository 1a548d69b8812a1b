package domain

import "strings"

// MaxLen bounds the buffer; yard lines and split times never need more.
const MaxLen = 12

// Target is the field a keypad edits.
type Target interface {
	Value() string
	SetValue(value string)
}

// Keypad is a modal numeric entry buffer bound to one target at a time.
// Edits stay in the buffer until Apply.
type Keypad struct {
	target Target
	buffer string
	open   bool
}

// Open binds target and seeds the buffer with its current value. A nil
// target is allowed; Apply then only closes the keypad.
func (k *Keypad) Open(target Target) {
	k.target = target
	k.buffer = ""
	if target != nil {
		k.buffer = target.Value()
	}
	k.open = true
}

func (k *Keypad) IsOpen() bool  { return k.open }
func (k *Keypad) Value() string { return k.buffer }

// Press appends a digit, "." or "+"; "-" toggles the sign. Anything else is
// ignored.
func (k *Keypad) Press(key string) bool {
	if k.open && key == "-" {
		k.ToggleSign()
		return true
	}
	if !k.open || len(key) != 1 || len(k.buffer) >= MaxLen {
		return false
	}
	c := key[0]
	if (c < '0' || c > '9') && c != '.' && c != '+' {
		return false
	}
	k.buffer += key
	return true
}

// ToggleSign turns an empty buffer into "-", strips a leading "-", or
// prefixes one.
func (k *Keypad) ToggleSign() {
	if !k.open {
		return
	}
	switch {
	case k.buffer == "":
		k.buffer = "-"
	case strings.HasPrefix(k.buffer, "-"):
		k.buffer = k.buffer[1:]
	default:
		k.buffer = "-" + k.buffer
	}
}

func (k *Keypad) Backspace() {
	if k.open && k.buffer != "" {
		k.buffer = k.buffer[:len(k.buffer)-1]
	}
}

func (k *Keypad) Clear() {
	if k.open {
		k.buffer = ""
	}
}

// Apply writes the buffer to the target and closes the keypad. It reports
// whether a target received the value.
func (k *Keypad) Apply() bool {
	if !k.open {
		return false
	}
	wrote := false
	if k.target != nil {
		k.target.SetValue(k.buffer)
		wrote = true
	}
	k.close()
	return wrote
}

// Cancel closes the keypad without touching the target.
func (k *Keypad) Cancel() {
	k.close()
}

func (k *Keypad) close() {
	k.target = nil
	k.buffer = ""
	k.open = false
}
