package slug

import (
	"strings"
	"testing"
)

func TestMake(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in, want string
	}{
		{"Tuesday Special Teams", "tuesday-special-teams"},
		{"  FG / Punt -- Week 3 ", "fg-punt-week-3"},
		{"Café Drills", "caf-drills"},
		{"!!!", "practice-results"},
		{"", "practice-results"},
	}
	for _, tc := range cases {
		if got := Make(tc.in, "practice-results"); got != tc.want {
			t.Fatalf("Make(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMakeBoundsLength(t *testing.T) {
	t.Parallel()
	got := Make(strings.Repeat("kick ", 40), "x")
	if len(got) > maxLen || strings.HasSuffix(got, "-") {
		t.Fatalf("unexpected slug %q", got)
	}
}
