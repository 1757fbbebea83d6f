package life

import "time"

// Step interval bounds.
const (
	MinStepInterval     = 10 * time.Millisecond
	MaxStepInterval     = time.Second
	DefaultStepInterval = 200 * time.Millisecond
)

// stepper reports when a fixed simulation interval has elapsed.
//
// Unlike a catch-up accumulator it never owes more than one tick: once the
// interval is reached the accumulated time is discarded, whether or not the
// caller actually ticks.
type stepper struct {
	interval time.Duration
	acc      time.Duration
}

func newStepper(interval time.Duration) *stepper {
	s := &stepper{}
	s.setInterval(interval)
	return s
}

func (s *stepper) setInterval(d time.Duration) {
	s.interval = min(max(d, MinStepInterval), MaxStepInterval)
}

// due feeds dt into the stepper and reports whether the interval elapsed.
func (s *stepper) due(dt time.Duration) bool {
	if dt > 0 {
		s.acc += dt
	}
	if s.acc >= s.interval {
		s.acc = 0
		return true
	}
	return false
}

func (s *stepper) reset() { s.acc = 0 }
