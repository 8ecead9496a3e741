// Package adapter implements the nodekit capability interfaces by forwarding
// every call to a wrapped engine node.
//
// Each engine class has an adapter struct of the same name. A derived adapter
// embeds the adapter of its base class built over the same node, so base
// members are implemented once and promoted:
//
//	type Sprite2D struct {
//		*Node2D
//		sprite *engine.Sprite2D
//	}
//
// Adapters are constructed in one of two ways. NewX takes the precise engine
// pointer and never fails. AdaptX takes a generic engine.Instance, checks its
// runtime class, and returns a *TypeMismatchError (matching
// ErrInvalidArgument) when the instance is not an X:
//
//	s, err := adapter.AdaptSprite2D(inst)
//	if errors.Is(err, adapter.ErrInvalidArgument) {
//		// inst is not a Sprite2D
//	}
//
// Adapt picks the most-derived adapter for an instance. Adapters hold no state
// besides the wrapped pointers: they never create, free, or cache nodes, and
// engine panics pass through unchanged.
package adapter
