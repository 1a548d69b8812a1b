package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	SchemaVersion = 1
	DateLayout    = "2006-01-02"
)

// Practice is a workout day with its logged kicks in order.
type Practice struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	StartedAt time.Time `json:"started_at"`
	Kicks     []Kick    `json:"kicks"`
}

func (p Practice) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("practice id is required")
	}
	if _, err := time.Parse(DateLayout, p.Date); err != nil {
		return fmt.Errorf("practice date %q: want YYYY-MM-DD", p.Date)
	}
	return nil
}

// ByType returns the kicks of type t in logging order.
func (p Practice) ByType(t KickType) []Kick {
	var out []Kick
	for _, k := range p.Kicks {
		if k.Type == t {
			out = append(out, k)
		}
	}
	return out
}

// Counts tallies kicks per type.
func (p Practice) Counts() map[KickType]int {
	counts := map[KickType]int{}
	for _, k := range p.Kicks {
		counts[k.Type]++
	}
	return counts
}
