package timer

import "time"

// DoorTimer is a one-shot countdown polled by the control loop.
type DoorTimer struct {
	endTime time.Time
	active  bool
	now     func() time.Time
}

func New() *DoorTimer {
	return NewWithClock(time.Now)
}

// NewWithClock is used by tests to control time.
func NewWithClock(now func() time.Time) *DoorTimer {
	return &DoorTimer{now: now}
}

// Start starts or restarts the timer.
func (t *DoorTimer) Start(duration time.Duration) {
	t.endTime = t.now().Add(duration)
	t.active = true
}

func (t *DoorTimer) Stop() {
	t.active = false
}

// TimedOut returns true once the timer is active and the duration has passed.
func (t *DoorTimer) TimedOut() bool {
	return t.active && t.now().After(t.endTime)
}

func (t *DoorTimer) Active() bool {
	return t.active
}
