package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	stopwatchout "kickclock/internal/modules/stopwatch/adapter/out"
	"kickclock/internal/modules/stopwatch/service"
	"kickclock/internal/modules/stopwatch/usecase"
	apperrors "kickclock/internal/platform/errors"
)

func newWatches(clk clockwork.Clock, els *stopwatchout.ElementSet) (*service.SingleStopwatch, *service.PuntStopwatch) {
	fg := service.NewSingleStopwatch("fg", clk, els.Element("fg_timer"), els.Element("fg_op_time"), zerolog.Nop())
	punt := service.NewPuntStopwatch("punt", clk, els.Element("punt_timer"), service.PuntFields{
		Snap:       els.Element("punt_snap_time"),
		HandToFoot: els.Element("punt_hand_to_foot"),
		Hang:       els.Element("punt_hang_time"),
	}, zerolog.Nop())
	return fg, punt
}

func TestBoardRoutesByNameAndReportsFrames(t *testing.T) {
	t.Parallel()
	clk := clockwork.NewFakeClock()
	els := stopwatchout.NewElementSet()
	fg, punt := newWatches(clk, els)
	board := usecase.NewBoard(fg, punt, fg)

	if names := board.Names(); len(names) != 2 || names[0] != "fg" || names[1] != "punt" {
		t.Fatalf("unexpected names %v", names)
	}

	out, err := board.Press("punt")
	if err != nil {
		t.Fatalf("press punt: %v", err)
	}
	if !out.Active || out.Phase != "snap" || out.Kind != "punt" {
		t.Fatalf("unexpected readout %+v", out)
	}
	clk.Advance(700 * time.Millisecond)
	frame, more, err := board.Frame("punt", out.Frame)
	if err != nil || !more {
		t.Fatalf("frame should continue: more=%t err=%v", more, err)
	}
	if frame.Snap != 700*time.Millisecond || frame.Display != "Snap 0.700 | H2F 0.000 | Hang 0.000 (SNAP)" {
		t.Fatalf("unexpected frame readout %+v", frame)
	}

	if _, err := board.Advance("punt"); err != nil {
		t.Fatalf("advance: %v", err)
	}
	stopped, err := board.Stop("punt")
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if stopped.Active || stopped.Phase != "idle" {
		t.Fatalf("stop should return to idle, got %+v", stopped)
	}
	if _, more, _ := board.Frame("punt", out.Frame); more {
		t.Fatalf("stale frame must not continue")
	}
}

func TestBoardUnknownName(t *testing.T) {
	t.Parallel()
	board := usecase.NewBoard()
	if _, err := board.Press("xp"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, _, err := board.Frame("xp", 1); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found from frame, got %v", err)
	}
}

func TestBoardResetAll(t *testing.T) {
	t.Parallel()
	clk := clockwork.NewFakeClock()
	els := stopwatchout.NewElementSet()
	fg, punt := newWatches(clk, els)
	board := usecase.NewBoard(fg, punt)

	_, _ = board.Start("fg")
	_, _ = board.Start("punt")
	clk.Advance(time.Second)
	_, _ = board.Stop("fg")
	board.ResetAll()

	for _, name := range board.Names() {
		out, err := board.Read(name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if out.Active || out.Elapsed != 0 {
			t.Fatalf("%s not reset: %+v", name, out)
		}
	}
	if els.Value("fg_op_time") != "" {
		t.Fatalf("reset all should clear fields")
	}
}
