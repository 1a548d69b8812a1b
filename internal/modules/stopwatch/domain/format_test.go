package domain_test

import (
	"testing"
	"time"

	"kickclock/internal/modules/stopwatch/domain"
)

func TestDisplays(t *testing.T) {
	t.Parallel()
	if got := domain.SingleDisplay(0); got != "0.000 s" {
		t.Fatalf("unexpected idle display %q", got)
	}
	if got := domain.SingleDisplay(1234 * time.Millisecond); got != "1.234 s" {
		t.Fatalf("unexpected display %q", got)
	}
	splits := domain.Splits{Snap: 760 * time.Millisecond, HandToFoot: 1250 * time.Millisecond}
	if got := domain.PuntDisplay(splits, domain.PhaseHandToFoot); got != "Snap 0.760 | H2F 1.250 | Hang 0.000 (H2F)" {
		t.Fatalf("unexpected punt display %q", got)
	}
	if got := domain.PuntDisplay(domain.Splits{}, domain.PhaseIdle); got != "Snap 0.000 | H2F 0.000 | Hang 0.000" {
		t.Fatalf("idle punt display must omit phase, got %q", got)
	}
}
