package engine

// Timer counts down while the tree processes it and emits "timeout".
type Timer struct {
	Node

	waitTime  float64
	oneShot   bool
	autostart bool
	paused    bool
	stopped   bool
	timeLeft  float64
}

// NewTimer creates a stopped, repeating timer with a one second wait time.
func NewTimer(name string) *Timer {
	t := &Timer{}
	t.initNode(t, ClassTimer, name)
	t.waitTime = 1
	t.stopped = true
	return t
}

// AsTimer returns t.
func (t *Timer) AsTimer() *Timer { return t }

// WaitTime returns the countdown length in seconds.
func (t *Timer) WaitTime() float64 {
	return t.waitTime
}

// SetWaitTime sets the countdown length in seconds. Panics if sec <= 0.
func (t *Timer) SetWaitTime(sec float64) {
	if sec <= 0 {
		panic("engine: Timer wait time must be positive")
	}
	t.waitTime = sec
}

// OneShot reports whether the timer stops after the first timeout.
func (t *Timer) OneShot() bool {
	return t.oneShot
}

// SetOneShot sets whether the timer stops after the first timeout.
func (t *Timer) SetOneShot(oneShot bool) {
	t.oneShot = oneShot
}

// Autostart reports whether the timer starts when it becomes ready.
func (t *Timer) Autostart() bool {
	return t.autostart
}

// SetAutostart sets whether the timer starts when it becomes ready.
func (t *Timer) SetAutostart(autostart bool) {
	t.autostart = autostart
}

// Paused reports whether the countdown is suspended.
func (t *Timer) Paused() bool {
	return t.paused
}

// SetPaused suspends or resumes the countdown.
func (t *Timer) SetPaused(paused bool) {
	t.paused = paused
}

// Start (re)starts the countdown. A positive sec replaces WaitTime first;
// zero keeps it. Panics if sec < 0.
func (t *Timer) Start(sec float64) {
	if sec < 0 {
		panic("engine: Timer wait time must be positive")
	}
	if sec > 0 {
		t.waitTime = sec
	}
	t.stopped = false
	t.timeLeft = t.waitTime
}

// Stop halts the countdown and clears the remaining time.
func (t *Timer) Stop() {
	t.stopped = true
	t.timeLeft = 0
}

// IsStopped reports whether the timer is not counting down.
func (t *Timer) IsStopped() bool {
	return t.stopped
}

// TimeLeft returns the remaining seconds, or 0 when stopped.
func (t *Timer) TimeLeft() float64 {
	return t.timeLeft
}

func (t *Timer) internalProcess(delta float64) {
	if t.stopped || t.paused {
		return
	}
	t.timeLeft -= delta
	if t.timeLeft > 0 {
		return
	}
	if t.oneShot {
		t.Stop()
	} else {
		t.timeLeft += t.waitTime
		if t.timeLeft <= 0 {
			t.timeLeft = t.waitTime
		}
	}
	t.EmitSignal(SignalTimeout)
}

func (t *Timer) notification(what int) {
	if what == notificationReady && t.autostart && t.stopped {
		t.Start(0)
	}
}
