package domain

import "time"

type Kind string

const (
	KindSingle Kind = "single"
	KindPunt   Kind = "punt"
)

// Reading is a point-in-time view of a stopwatch.
type Reading struct {
	Kind    Kind
	Phase   Phase
	Active  bool
	Elapsed time.Duration
	Splits  Splits
	Display string
}
