package domain

import "strings"

// Phase is a segment of the three-phase punt drill.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSnap
	PhaseHandToFoot
	PhaseHang
)

var phaseNames = [...]string{"idle", "snap", "h2f", "hang"}

func (p Phase) String() string {
	if p < PhaseIdle || p > PhaseHang {
		return "unknown"
	}
	return phaseNames[p]
}

// Label is the upper-case form shown next to a running punt timer.
func (p Phase) Label() string {
	return strings.ToUpper(p.String())
}

func (p Phase) Active() bool {
	return p != PhaseIdle
}

// Event drives a phase transition.
type Event int

const (
	EventStart Event = iota
	EventAdvance
	EventStop
	EventReset
)

// Next is the punt transition table. The bool reports whether ev applies to
// p; when it does not, p is returned unchanged and the caller treats the
// event as a no-op.
//
//	idle --start--> snap --advance--> h2f --advance--> hang
//	any  --stop|reset--> idle
func Next(p Phase, ev Event) (Phase, bool) {
	switch ev {
	case EventStart:
		if p == PhaseIdle {
			return PhaseSnap, true
		}
	case EventAdvance:
		switch p {
		case PhaseSnap:
			return PhaseHandToFoot, true
		case PhaseHandToFoot:
			return PhaseHang, true
		}
	case EventStop, EventReset:
		return PhaseIdle, true
	}
	return p, false
}
