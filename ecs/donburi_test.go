package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/nodekit/engine"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	assert.NotNil(t, NewDonburiSink(world))
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []engine.SignalEvent
	SignalEventType.Subscribe(world, func(w donburi.World, e engine.SignalEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(engine.SignalEvent{
		Signal:     engine.SignalPressed,
		InstanceID: 42,
		Class:      engine.ClassButton,
		Name:       "ok",
		Path:       "/root/ok",
	})
	sink.EmitEvent(engine.SignalEvent{
		Signal: engine.SignalToggled,
		Args:   []any{true},
	})

	// Events are queued until processed.
	SignalEventType.ProcessEvents(world)

	require.Len(t, received, 2)
	e0 := received[0]
	assert.Equal(t, engine.SignalPressed, e0.Signal)
	assert.EqualValues(t, 42, e0.InstanceID)
	assert.Equal(t, "/root/ok", e0.Path)
	e1 := received[1]
	assert.Equal(t, engine.SignalToggled, e1.Signal)
	assert.Equal(t, []any{true}, e1.Args)
}

func TestDonburiSink_Filter(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world, engine.SignalTimeout)

	var got []string
	SignalEventType.Subscribe(world, func(w donburi.World, e engine.SignalEvent) {
		got = append(got, e.Signal)
	})

	sink.EmitEvent(engine.SignalEvent{Signal: engine.SignalPressed})
	sink.EmitEvent(engine.SignalEvent{Signal: engine.SignalTimeout})
	SignalEventType.ProcessEvents(world)

	assert.Equal(t, []string{engine.SignalTimeout}, got)
}

func TestDonburiSink_FromSceneTree(t *testing.T) {
	world := donburi.NewWorld()
	tree := engine.NewSceneTree()
	tree.SetEventSink(NewDonburiSink(world))

	btn := engine.NewButton("ok")
	tree.Root().AddChild(btn)

	var received []engine.SignalEvent
	SignalEventType.Subscribe(world, func(w donburi.World, e engine.SignalEvent) {
		if e.Signal == engine.SignalPressed {
			received = append(received, e)
		}
	})

	btn.Press()
	events.ProcessAllEvents(world)

	require.Len(t, received, 1)
	e := received[0]
	assert.Equal(t, btn.InstanceID(), e.InstanceID)
	assert.Equal(t, engine.ClassButton, e.Class)
	assert.Equal(t, "/root/ok", e.Path)
}

func TestDonburiSink_OutsideTree(t *testing.T) {
	world := donburi.NewWorld()
	tree := engine.NewSceneTree()
	tree.SetEventSink(NewDonburiSink(world))

	btn := engine.NewButton("detached")
	count := 0
	SignalEventType.Subscribe(world, func(w donburi.World, e engine.SignalEvent) {
		count++
	})

	btn.Press()
	events.ProcessAllEvents(world)

	assert.Equal(t, 0, count, "detached node should not publish events")
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	SignalEventType.Subscribe(world, func(w donburi.World, e engine.SignalEvent) {
		count1++
	})
	SignalEventType.Subscribe(world, func(w donburi.World, e engine.SignalEvent) {
		count2++
	})

	sink.EmitEvent(engine.SignalEvent{Signal: engine.SignalFinished})
	events.ProcessAllEvents(world)

	assert.Equal(t, 1, count1)
	assert.Equal(t, 1, count2)
}
