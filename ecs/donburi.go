package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/nodekit/engine"
)

// SignalEventType is the Donburi event type for engine signals.
// Subscribe to this in your ECS systems to receive node signals.
var SignalEventType = events.NewEventType[engine.SignalEvent]()

type donburiSink struct {
	world   donburi.World
	signals map[string]bool
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Signals are published to SignalEventType and can be consumed with
// events.Subscribe and ProcessEvents. When signals is non-empty only those
// signal names are forwarded.
func NewDonburiSink(world donburi.World, signals ...string) engine.EventSink {
	s := &donburiSink{world: world}
	if len(signals) > 0 {
		s.signals = make(map[string]bool, len(signals))
		for _, name := range signals {
			s.signals[name] = true
		}
	}
	return s
}

func (s *donburiSink) EmitEvent(event engine.SignalEvent) {
	if s.signals != nil && !s.signals[event.Signal] {
		return
	}
	SignalEventType.Publish(s.world, event)
}
