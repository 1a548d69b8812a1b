package service

import "kickclock/internal/modules/stopwatch/domain"

// Stopwatch is a timer bound to its display and output fields.
//
// Every state change bumps the frame generation. The UI schedules its
// per-frame refresh with the generation it was handed, so a refresh carrying
// an older generation is dropped; that is how stop and reset cancel a
// pending frame.
type Stopwatch interface {
	Name() string
	Start() bool
	Advance() bool
	Stop() bool
	Reset()
	// Press is the single-button control: start/stop for one-phase timers,
	// start/advance/stop for the punt timer.
	Press() bool
	// Refresh redraws the display and reports whether another frame should
	// be scheduled.
	Refresh(frame uint64) bool
	Frame() uint64
	Reading() domain.Reading
}
