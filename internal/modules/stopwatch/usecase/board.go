package usecase

import (
	"fmt"

	"kickclock/internal/modules/stopwatch/dto"
	stopwatchin "kickclock/internal/modules/stopwatch/port/in"
	"kickclock/internal/modules/stopwatch/service"
	apperrors "kickclock/internal/platform/errors"
)

// Board owns the stopwatches of one screen and routes operations by name.
type Board struct {
	order   []string
	watches map[string]service.Stopwatch
}

func NewBoard(watches ...service.Stopwatch) stopwatchin.Usecase {
	b := &Board{watches: make(map[string]service.Stopwatch, len(watches))}
	for _, w := range watches {
		if _, dup := b.watches[w.Name()]; dup {
			continue
		}
		b.order = append(b.order, w.Name())
		b.watches[w.Name()] = w
	}
	return b
}

func (b *Board) Names() []string {
	return append([]string(nil), b.order...)
}

func (b *Board) Read(name string) (dto.Readout, error) {
	w, err := b.lookup(name)
	if err != nil {
		return dto.Readout{}, err
	}
	return readout(w), nil
}

func (b *Board) Press(name string) (dto.Readout, error) {
	return b.apply(name, func(w service.Stopwatch) { w.Press() })
}

func (b *Board) Start(name string) (dto.Readout, error) {
	return b.apply(name, func(w service.Stopwatch) { w.Start() })
}

func (b *Board) Advance(name string) (dto.Readout, error) {
	return b.apply(name, func(w service.Stopwatch) { w.Advance() })
}

func (b *Board) Stop(name string) (dto.Readout, error) {
	return b.apply(name, func(w service.Stopwatch) { w.Stop() })
}

func (b *Board) Reset(name string) (dto.Readout, error) {
	return b.apply(name, func(w service.Stopwatch) { w.Reset() })
}

// Frame runs one display refresh. The bool reports whether the caller should
// schedule the next frame with the same generation.
func (b *Board) Frame(name string, frame uint64) (dto.Readout, bool, error) {
	w, err := b.lookup(name)
	if err != nil {
		return dto.Readout{}, false, err
	}
	more := w.Refresh(frame)
	return readout(w), more, nil
}

func (b *Board) ResetAll() {
	for _, name := range b.order {
		b.watches[name].Reset()
	}
}

func (b *Board) apply(name string, op func(service.Stopwatch)) (dto.Readout, error) {
	w, err := b.lookup(name)
	if err != nil {
		return dto.Readout{}, err
	}
	op(w)
	return readout(w), nil
}

func (b *Board) lookup(name string) (service.Stopwatch, error) {
	w, ok := b.watches[name]
	if !ok {
		return nil, fmt.Errorf("stopwatch %q: %w", name, apperrors.ErrNotFound)
	}
	return w, nil
}

func readout(w service.Stopwatch) dto.Readout {
	r := w.Reading()
	return dto.Readout{
		Name:       w.Name(),
		Kind:       string(r.Kind),
		Phase:      r.Phase.String(),
		Active:     r.Active,
		Display:    r.Display,
		Frame:      w.Frame(),
		Elapsed:    r.Elapsed,
		Snap:       r.Splits.Snap,
		HandToFoot: r.Splits.HandToFoot,
		Hang:       r.Splits.Hang,
	}
}
