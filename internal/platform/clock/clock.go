package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock abstracts time to keep timers and usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// System returns the wall clock. clockwork.FakeClock satisfies Clock in tests.
func System() Clock {
	return clockwork.NewRealClock()
}
