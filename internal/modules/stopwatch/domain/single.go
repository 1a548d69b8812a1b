package domain

import "time"

// Single is a one-phase stopwatch. It holds no clock; callers pass the
// current time to every operation.
type Single struct {
	running   bool
	startedAt time.Time
	elapsed   time.Duration
}

// Start begins a new measurement. It reports false when already running.
func (s *Single) Start(now time.Time) bool {
	if s.running {
		return false
	}
	s.running = true
	s.startedAt = now
	s.elapsed = 0
	return true
}

// Stop freezes the elapsed duration. It reports false when not running.
func (s *Single) Stop(now time.Time) bool {
	if !s.running {
		return false
	}
	s.elapsed = since(s.startedAt, now)
	s.running = false
	return true
}

func (s *Single) Reset() {
	s.running = false
	s.startedAt = time.Time{}
	s.elapsed = 0
}

func (s *Single) Running() bool {
	return s.running
}

// Elapsed is the live duration while running and the frozen one otherwise.
func (s *Single) Elapsed(now time.Time) time.Duration {
	if s.running {
		return since(s.startedAt, now)
	}
	return s.elapsed
}

func since(start, now time.Time) time.Duration {
	d := now.Sub(start)
	if d < 0 {
		return 0
	}
	return d
}
