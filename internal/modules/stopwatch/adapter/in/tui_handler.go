package in

import (
	"kickclock/internal/modules/stopwatch/dto"
	stopwatchin "kickclock/internal/modules/stopwatch/port/in"
)

type TUIHandler struct {
	usecase stopwatchin.Usecase
}

func NewTUIHandler(usecase stopwatchin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Names() []string { return h.usecase.Names() }

func (h TUIHandler) Read(name string) (dto.Readout, error)  { return h.usecase.Read(name) }
func (h TUIHandler) Press(name string) (dto.Readout, error) { return h.usecase.Press(name) }
func (h TUIHandler) Stop(name string) (dto.Readout, error)  { return h.usecase.Stop(name) }
func (h TUIHandler) Reset(name string) (dto.Readout, error) { return h.usecase.Reset(name) }

func (h TUIHandler) Frame(name string, frame uint64) (dto.Readout, bool, error) {
	return h.usecase.Frame(name, frame)
}

func (h TUIHandler) ResetAll() { h.usecase.ResetAll() }
