package dto

import "time"

type Readout struct {
	Name       string
	Kind       string
	Phase      string
	Active     bool
	Display    string
	Frame      uint64
	Elapsed    time.Duration
	Snap       time.Duration
	HandToFoot time.Duration
	Hang       time.Duration
}
