package domain

import (
	"fmt"
	"time"
)

// Seconds renders d as seconds with millisecond precision, e.g. "1.234".
func Seconds(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}

// SingleDisplay is the readout of a one-phase stopwatch, e.g. "1.234 s".
func SingleDisplay(d time.Duration) string {
	return Seconds(d) + " s"
}

// PuntDisplay is the readout of the punt stopwatch. The phase label is
// appended only while a phase is running.
func PuntDisplay(s Splits, phase Phase) string {
	text := fmt.Sprintf("Snap %s | H2F %s | Hang %s", Seconds(s.Snap), Seconds(s.HandToFoot), Seconds(s.Hang))
	if phase.Active() {
		text += " (" + phase.Label() + ")"
	}
	return text
}
