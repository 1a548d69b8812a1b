package service

import (
	"github.com/rs/zerolog"

	"kickclock/internal/modules/stopwatch/domain"
	stopwatchout "kickclock/internal/modules/stopwatch/port/out"
	"kickclock/internal/platform/clock"
)

// PuntFields are the outputs of the punt stopwatch. Any of them may be nil.
type PuntFields struct {
	Snap       stopwatchout.Field
	HandToFoot stopwatchout.Field
	Hang       stopwatchout.Field
}

type PuntStopwatch struct {
	name    string
	clock   clock.Clock
	display stopwatchout.TextSink
	fields  PuntFields
	log     zerolog.Logger

	timer domain.Punt
	frame uint64
}

func NewPuntStopwatch(name string, clk clock.Clock, display stopwatchout.TextSink, fields PuntFields, log zerolog.Logger) *PuntStopwatch {
	p := &PuntStopwatch{
		name:    name,
		clock:   clk,
		display: display,
		fields:  fields,
		log:     log.With().Str("stopwatch", name).Logger(),
	}
	p.render()
	return p
}

func (p *PuntStopwatch) Name() string  { return p.name }
func (p *PuntStopwatch) Frame() uint64 { return p.frame }

func (p *PuntStopwatch) Start() bool {
	if !p.timer.Start(p.clock.Now()) {
		return false
	}
	p.frame++
	p.render()
	p.log.Debug().Msg("punt rep started")
	return true
}

func (p *PuntStopwatch) Advance() bool {
	if !p.timer.Advance(p.clock.Now()) {
		return false
	}
	p.render()
	p.log.Debug().Stringer("phase", p.timer.Phase()).Msg("punt phase advanced")
	return true
}

// Stop is valid from every phase and always publishes the three splits.
func (p *PuntStopwatch) Stop() bool {
	changed := p.timer.Stop(p.clock.Now())
	p.frame++
	p.render()
	splits := p.timer.Splits()
	setField(p.fields.Snap, domain.Seconds(splits.Snap))
	setField(p.fields.HandToFoot, domain.Seconds(splits.HandToFoot))
	setField(p.fields.Hang, domain.Seconds(splits.Hang))
	p.log.Info().
		Dur("snap", splits.Snap).
		Dur("hand_to_foot", splits.HandToFoot).
		Dur("hang", splits.Hang).
		Msg("punt rep stopped")
	return changed
}

func (p *PuntStopwatch) Reset() {
	p.timer.Reset()
	p.frame++
	p.render()
	clearField(p.fields.Snap)
	clearField(p.fields.HandToFoot)
	clearField(p.fields.Hang)
	p.log.Debug().Msg("punt rep reset")
}

func (p *PuntStopwatch) Press() bool {
	switch p.timer.Phase() {
	case domain.PhaseIdle:
		return p.Start()
	case domain.PhaseHang:
		return p.Stop()
	default:
		return p.Advance()
	}
}

func (p *PuntStopwatch) Refresh(frame uint64) bool {
	if frame != p.frame || !p.timer.Phase().Active() {
		return false
	}
	p.render()
	return true
}

func (p *PuntStopwatch) Reading() domain.Reading {
	now := p.clock.Now()
	live := p.timer.Live(now)
	return domain.Reading{
		Kind:    domain.KindPunt,
		Phase:   p.timer.Phase(),
		Active:  p.timer.Phase().Active(),
		Elapsed: p.timer.Current(now),
		Splits:  live,
		Display: domain.PuntDisplay(live, p.timer.Phase()),
	}
}

func (p *PuntStopwatch) render() {
	if p.display == nil {
		return
	}
	p.display.SetText(domain.PuntDisplay(p.timer.Live(p.clock.Now()), p.timer.Phase()))
}

func setField(f stopwatchout.Field, value string) {
	if f != nil {
		f.SetValue(value)
	}
}

func clearField(f stopwatchout.Field) {
	if f != nil {
		f.Clear()
	}
}
