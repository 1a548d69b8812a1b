package domain

import "time"

// Splits are the recorded durations of a punt rep.
type Splits struct {
	Snap       time.Duration
	HandToFoot time.Duration
	Hang       time.Duration
}

func (s Splits) Total() time.Duration {
	return s.Snap + s.HandToFoot + s.Hang
}

// Punt is the three-phase stopwatch. Phase changes go through Next.
type Punt struct {
	phase      Phase
	phaseStart time.Time
	splits     Splits
}

func (p *Punt) Phase() Phase {
	return p.phase
}

func (p *Punt) Splits() Splits {
	return p.splits
}

// Start enters the snap phase from idle and clears the previous rep.
func (p *Punt) Start(now time.Time) bool {
	next, ok := Next(p.phase, EventStart)
	if !ok {
		return false
	}
	p.splits = Splits{}
	p.enter(next, now)
	return true
}

// Advance closes the current phase and opens the following one. It is a
// no-op from idle and hang.
func (p *Punt) Advance(now time.Time) bool {
	next, ok := Next(p.phase, EventAdvance)
	if !ok {
		return false
	}
	p.record(now)
	p.enter(next, now)
	return true
}

// Stop always returns to idle. Only the hang phase is recorded on stop; a rep
// cut short in snap or h2f keeps whatever was already split.
func (p *Punt) Stop(now time.Time) bool {
	was := p.phase
	next, _ := Next(p.phase, EventStop)
	if was == PhaseHang {
		p.record(now)
	}
	p.enter(next, now)
	return was.Active()
}

func (p *Punt) Reset() {
	next, _ := Next(p.phase, EventReset)
	p.splits = Splits{}
	p.enter(next, time.Time{})
}

// Current is the running duration of the active phase, zero when idle.
func (p *Punt) Current(now time.Time) time.Duration {
	if !p.phase.Active() {
		return 0
	}
	return since(p.phaseStart, now)
}

// Live returns the splits with the active phase filled in with its running
// duration.
func (p *Punt) Live(now time.Time) Splits {
	live := p.splits
	switch p.phase {
	case PhaseSnap:
		live.Snap = p.Current(now)
	case PhaseHandToFoot:
		live.HandToFoot = p.Current(now)
	case PhaseHang:
		live.Hang = p.Current(now)
	}
	return live
}

func (p *Punt) record(now time.Time) {
	d := since(p.phaseStart, now)
	switch p.phase {
	case PhaseSnap:
		p.splits.Snap = d
	case PhaseHandToFoot:
		p.splits.HandToFoot = d
	case PhaseHang:
		p.splits.Hang = d
	}
}

func (p *Punt) enter(phase Phase, now time.Time) {
	p.phase = phase
	if phase.Active() {
		p.phaseStart = now
	} else {
		p.phaseStart = time.Time{}
	}
}
