package domain_test

import (
	"testing"

	"kickclock/internal/modules/stopwatch/domain"
)

func TestNextFollowsLinearCycle(t *testing.T) {
	t.Parallel()
	cases := []struct {
		from domain.Phase
		ev   domain.Event
		to   domain.Phase
		ok   bool
	}{
		{domain.PhaseIdle, domain.EventStart, domain.PhaseSnap, true},
		{domain.PhaseSnap, domain.EventStart, domain.PhaseSnap, false},
		{domain.PhaseHang, domain.EventStart, domain.PhaseHang, false},
		{domain.PhaseIdle, domain.EventAdvance, domain.PhaseIdle, false},
		{domain.PhaseSnap, domain.EventAdvance, domain.PhaseHandToFoot, true},
		{domain.PhaseHandToFoot, domain.EventAdvance, domain.PhaseHang, true},
		{domain.PhaseHang, domain.EventAdvance, domain.PhaseHang, false},
		{domain.PhaseSnap, domain.EventStop, domain.PhaseIdle, true},
		{domain.PhaseHang, domain.EventStop, domain.PhaseIdle, true},
		{domain.PhaseIdle, domain.EventReset, domain.PhaseIdle, true},
		{domain.PhaseHandToFoot, domain.EventReset, domain.PhaseIdle, true},
	}
	for _, tc := range cases {
		got, ok := domain.Next(tc.from, tc.ev)
		if got != tc.to || ok != tc.ok {
			t.Fatalf("Next(%s, %d) = (%s, %t), want (%s, %t)", tc.from, tc.ev, got, ok, tc.to, tc.ok)
		}
	}
}

func TestPhaseNames(t *testing.T) {
	t.Parallel()
	if domain.PhaseHandToFoot.String() != "h2f" || domain.PhaseHang.Label() != "HANG" {
		t.Fatalf("unexpected phase names %s %s", domain.PhaseHandToFoot, domain.PhaseHang.Label())
	}
	if domain.Phase(42).String() != "unknown" {
		t.Fatalf("out of range phase should be unknown")
	}
	if domain.PhaseIdle.Active() || !domain.PhaseSnap.Active() {
		t.Fatalf("only idle is inactive")
	}
}
