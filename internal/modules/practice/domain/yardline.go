package domain

import (
	"strconv"
	"strings"
)

const fieldGoalOffset = 18

// AbsFromOwn converts a signed yard line into yards from the kicking team's
// own goal line. "-35" is the own 35 (35), "+35" or "35" is the opponent's
// 35 (65). Results are clamped to 0..100. The Unicode minus sign is accepted.
func AbsFromOwn(yardLine string) (int, bool) {
	s := normalizeSign(yardLine)
	if s == "" {
		return 0, false
	}
	own := strings.HasPrefix(s, "-")
	v, err := strconv.Atoi(strings.TrimLeft(s, "+-"))
	if err != nil {
		return 0, false
	}
	if own {
		return clampYards(v), true
	}
	return clampYards(100 - v), true
}

// Distance is the yardage between two signed yard lines, or "" when either
// is unknown.
func Distance(from, to string) string {
	a, okA := AbsFromOwn(from)
	b, okB := AbsFromOwn(to)
	if !okA || !okB {
		return ""
	}
	d := b - a
	if d < 0 {
		d = -d
	}
	return strconv.Itoa(d)
}

// FieldGoalDistance is the kick distance for a line of scrimmage: the yard
// line's magnitude plus the end zone and hold depth.
func FieldGoalDistance(yardLine string) string {
	s := normalizeSign(yardLine)
	if s == "" || s == "-" || s == "+" {
		return ""
	}
	v, err := strconv.Atoi(strings.NewReplacer("+", "", "-", "").Replace(s))
	if err != nil {
		return ""
	}
	if v < 0 {
		v = -v
	}
	return strconv.Itoa(v + fieldGoalOffset)
}

func normalizeSign(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "−", "-")
}

func clampYards(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
