package in

import "kickclock/internal/modules/stopwatch/dto"

// Usecase addresses stopwatches by name. Timer operations never fail; the
// only error is an unknown name.
type Usecase interface {
	Names() []string
	Read(name string) (dto.Readout, error)
	Press(name string) (dto.Readout, error)
	Start(name string) (dto.Readout, error)
	Advance(name string) (dto.Readout, error)
	Stop(name string) (dto.Readout, error)
	Reset(name string) (dto.Readout, error)
	Frame(name string, frame uint64) (dto.Readout, bool, error)
	ResetAll()
}
