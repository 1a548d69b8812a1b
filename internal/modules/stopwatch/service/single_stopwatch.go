package service

import (
	"github.com/rs/zerolog"

	"kickclock/internal/modules/stopwatch/domain"
	stopwatchout "kickclock/internal/modules/stopwatch/port/out"
	"kickclock/internal/platform/clock"
)

type SingleStopwatch struct {
	name    string
	clock   clock.Clock
	display stopwatchout.TextSink
	field   stopwatchout.Field
	log     zerolog.Logger

	timer domain.Single
	frame uint64
}

// NewSingleStopwatch binds a one-phase timer to display and field. Either
// collaborator may be nil.
func NewSingleStopwatch(name string, clk clock.Clock, display stopwatchout.TextSink, field stopwatchout.Field, log zerolog.Logger) *SingleStopwatch {
	s := &SingleStopwatch{
		name:    name,
		clock:   clk,
		display: display,
		field:   field,
		log:     log.With().Str("stopwatch", name).Logger(),
	}
	s.render()
	return s
}

func (s *SingleStopwatch) Name() string  { return s.name }
func (s *SingleStopwatch) Frame() uint64 { return s.frame }

func (s *SingleStopwatch) Start() bool {
	if !s.timer.Start(s.clock.Now()) {
		return false
	}
	s.frame++
	s.render()
	s.log.Debug().Msg("stopwatch started")
	return true
}

// Advance has no meaning for a one-phase timer.
func (s *SingleStopwatch) Advance() bool { return false }

func (s *SingleStopwatch) Stop() bool {
	now := s.clock.Now()
	if !s.timer.Stop(now) {
		return false
	}
	s.frame++
	elapsed := s.timer.Elapsed(now)
	s.render()
	if s.field != nil {
		s.field.SetValue(domain.Seconds(elapsed))
	}
	s.log.Info().Dur("elapsed", elapsed).Msg("stopwatch stopped")
	return true
}

func (s *SingleStopwatch) Reset() {
	s.timer.Reset()
	s.frame++
	s.render()
	if s.field != nil {
		s.field.Clear()
	}
	s.log.Debug().Msg("stopwatch reset")
}

func (s *SingleStopwatch) Press() bool {
	if s.timer.Running() {
		return s.Stop()
	}
	return s.Start()
}

func (s *SingleStopwatch) Refresh(frame uint64) bool {
	if frame != s.frame || !s.timer.Running() {
		return false
	}
	s.render()
	return true
}

func (s *SingleStopwatch) Reading() domain.Reading {
	elapsed := s.timer.Elapsed(s.clock.Now())
	return domain.Reading{
		Kind:    domain.KindSingle,
		Phase:   domain.PhaseIdle,
		Active:  s.timer.Running(),
		Elapsed: elapsed,
		Display: domain.SingleDisplay(elapsed),
	}
}

func (s *SingleStopwatch) render() {
	if s.display == nil {
		return
	}
	s.display.SetText(domain.SingleDisplay(s.timer.Elapsed(s.clock.Now())))
}
