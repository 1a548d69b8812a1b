package domain_test

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"kickclock/internal/modules/stopwatch/domain"
)

func TestSingleStartStopYieldsElapsed(t *testing.T) {
	t.Parallel()
	clk := clockwork.NewFakeClock()
	var sw domain.Single

	if !sw.Start(clk.Now()) {
		t.Fatalf("first start should apply")
	}
	clk.Advance(1250 * time.Millisecond)
	if sw.Start(clk.Now()) {
		t.Fatalf("start while running must be a no-op")
	}
	if got := sw.Elapsed(clk.Now()); got != 1250*time.Millisecond {
		t.Fatalf("expected live elapsed 1.25s, got %s", got)
	}
	if !sw.Stop(clk.Now()) {
		t.Fatalf("stop while running should apply")
	}
	clk.Advance(time.Second)
	if got := sw.Elapsed(clk.Now()); got != 1250*time.Millisecond {
		t.Fatalf("elapsed must freeze after stop, got %s", got)
	}
}

func TestSingleStopBeforeStartIsNoop(t *testing.T) {
	t.Parallel()
	clk := clockwork.NewFakeClock()
	var sw domain.Single
	if sw.Stop(clk.Now()) {
		t.Fatalf("stop before start must be a no-op")
	}
	if sw.Running() || sw.Elapsed(clk.Now()) != 0 {
		t.Fatalf("stopwatch should stay idle at zero")
	}
}

func TestSingleResetZeroesFromAnyState(t *testing.T) {
	t.Parallel()
	clk := clockwork.NewFakeClock()
	var sw domain.Single

	sw.Start(clk.Now())
	clk.Advance(time.Second)
	sw.Reset()
	if sw.Running() || sw.Elapsed(clk.Now()) != 0 {
		t.Fatalf("reset while running must zero and stop")
	}

	sw.Start(clk.Now())
	clk.Advance(time.Second)
	sw.Stop(clk.Now())
	sw.Reset()
	if sw.Elapsed(clk.Now()) != 0 {
		t.Fatalf("reset after stop must zero elapsed")
	}
}

func TestSingleElapsedNeverNegative(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 9, 12, 15, 0, 0, 0, time.UTC)
	var sw domain.Single
	sw.Start(start)
	sw.Stop(start.Add(-time.Second))
	if got := sw.Elapsed(start); got != 0 {
		t.Fatalf("clock going backwards must clamp to zero, got %s", got)
	}
}

func TestSingleRestartMeasuresFromZero(t *testing.T) {
	t.Parallel()
	clk := clockwork.NewFakeClock()
	var sw domain.Single
	sw.Start(clk.Now())
	clk.Advance(3 * time.Second)
	sw.Stop(clk.Now())

	sw.Start(clk.Now())
	clk.Advance(time.Second)
	sw.Stop(clk.Now())
	if got := sw.Elapsed(clk.Now()); got != time.Second {
		t.Fatalf("second rep should measure 1s, got %s", got)
	}
}
