package adapter

import (
	"github.com/phanxgames/nodekit"
	"github.com/phanxgames/nodekit/engine"
)

var _ nodekit.Timer = (*Timer)(nil)

// Timer forwards nodekit.Timer to an *engine.Timer.
type Timer struct {
	*Node
	timer *engine.Timer
}

// NewTimer wraps n without checking it.
func NewTimer(n *engine.Timer) *Timer {
	return &Timer{Node: NewNode(&n.Node), timer: n}
}

// AdaptTimer wraps inst if it is a Timer.
func AdaptTimer(inst engine.Instance) (*Timer, error) {
	c, err := narrow[interface{ AsTimer() *engine.Timer }](inst, engine.ClassTimer)
	if err != nil {
		return nil, err
	}
	return NewTimer(c.AsTimer()), nil
}

func (a *Timer) WaitTime() float64           { return a.timer.WaitTime() }
func (a *Timer) SetWaitTime(sec float64)     { a.timer.SetWaitTime(sec) }
func (a *Timer) OneShot() bool               { return a.timer.OneShot() }
func (a *Timer) SetOneShot(oneShot bool)     { a.timer.SetOneShot(oneShot) }
func (a *Timer) Autostart() bool             { return a.timer.Autostart() }
func (a *Timer) SetAutostart(autostart bool) { a.timer.SetAutostart(autostart) }
func (a *Timer) Paused() bool                { return a.timer.Paused() }
func (a *Timer) SetPaused(paused bool)       { a.timer.SetPaused(paused) }
func (a *Timer) Start(sec float64)           { a.timer.Start(sec) }
func (a *Timer) Stop()                       { a.timer.Stop() }
func (a *Timer) IsStopped() bool             { return a.timer.IsStopped() }
func (a *Timer) TimeLeft() float64           { return a.timer.TimeLeft() }
