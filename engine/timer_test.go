package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerDefaults(t *testing.T) {
	tm := NewTimer("t")
	assert.True(t, tm.IsStopped())
	assert.Equal(t, 1.0, tm.WaitTime())
	assert.Zero(t, tm.TimeLeft())
	assert.False(t, tm.OneShot())
	assert.False(t, tm.Autostart())
	assert.False(t, tm.Paused())

	assert.Panics(t, func() { tm.SetWaitTime(0) }, "SetWaitTime(0)")
	assert.Panics(t, func() { tm.SetWaitTime(-1) }, "SetWaitTime(-1)")
	assert.Panics(t, func() { tm.Start(-1) }, "Start(-1)")
}

func TestTimerStart(t *testing.T) {
	tm := NewTimer("t")
	tm.Start(0)
	assert.False(t, tm.IsStopped())
	assert.Equal(t, 1.0, tm.WaitTime(), "Start(0) keeps the wait time")
	assert.Equal(t, 1.0, tm.TimeLeft())

	tm.Start(2.5)
	assert.Equal(t, 2.5, tm.WaitTime())
	assert.Equal(t, 2.5, tm.TimeLeft())

	tm.Stop()
	assert.True(t, tm.IsStopped())
	assert.Zero(t, tm.TimeLeft(), "Stop should clear the countdown")
}

func TestTimerRepeats(t *testing.T) {
	tm := NewTimer("t")
	fired := 0
	tm.Connect(SignalTimeout, func(...any) { fired++ })
	tm.Start(0)

	tm.internalProcess(0.5)
	assert.Equal(t, 0, fired)
	assert.InDelta(t, 0.5, tm.TimeLeft(), epsilon)

	tm.internalProcess(0.75)
	assert.Equal(t, 1, fired)
	assert.InDelta(t, 0.75, tm.TimeLeft(), epsilon, "overshoot should carry")
	assert.False(t, tm.IsStopped(), "repeating timer should keep running")

	// A frame much longer than the wait time fires once and restarts.
	tm.internalProcess(5)
	assert.Equal(t, 2, fired, "long frame")
	assert.Equal(t, 1.0, tm.TimeLeft())
}

func TestTimerOneShot(t *testing.T) {
	tm := NewTimer("t")
	tm.SetOneShot(true)
	fired := 0
	tm.Connect(SignalTimeout, func(...any) { fired++ })
	tm.Start(1)

	tm.internalProcess(1)
	tm.internalProcess(1)
	assert.Equal(t, 1, fired)
	assert.True(t, tm.IsStopped(), "one-shot timer should stop after timeout")
}

func TestTimerPaused(t *testing.T) {
	tm := NewTimer("t")
	tm.Start(1)
	tm.SetPaused(true)
	tm.internalProcess(10)
	assert.Equal(t, 1.0, tm.TimeLeft(), "paused timer should not count down")

	tm.SetPaused(false)
	tm.internalProcess(0.25)
	assert.InDelta(t, 0.75, tm.TimeLeft(), epsilon)
}

func TestTimerAutostartInTree(t *testing.T) {
	tree := NewSceneTree()
	tm := NewTimer("spawn")
	tm.SetWaitTime(2)
	tm.SetAutostart(true)
	fired := 0
	tm.Connect(SignalTimeout, func(...any) { fired++ })

	tree.Root().AddChild(tm)
	require.False(t, tm.IsStopped(), "autostart")
	require.Equal(t, 2.0, tm.TimeLeft())

	tree.Process(1)
	tree.Process(1)
	assert.Equal(t, 1, fired)

	tree.SetPaused(true)
	tree.Process(5)
	assert.Equal(t, 1, fired, "timer should not run while the tree is paused")

	tm.SetProcessMode(ProcessModeAlways)
	tree.Process(2)
	assert.Equal(t, 2, fired, "ProcessModeAlways")
}

func TestTimerWithoutAutostartStaysStopped(t *testing.T) {
	tree := NewSceneTree()
	tm := NewTimer("t")
	tree.Root().AddChild(tm)
	tree.Process(5)
	assert.True(t, tm.IsStopped(), "timer without autostart should stay stopped")
}
