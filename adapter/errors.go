package adapter

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/phanxgames/nodekit/engine"
)

// ErrInvalidArgument is the class of errors returned when an adapter is
// constructed over a node of the wrong class.
var ErrInvalidArgument = errors.New("adapter: invalid argument")

// TypeMismatchError reports that a node could not be adapted as the requested
// class. It matches ErrInvalidArgument with errors.Is.
type TypeMismatchError struct {
	// Actual is the runtime class of the node, or "<nil>".
	Actual string
	// Expected is the class the caller asked for.
	Expected string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("adapter: cannot adapt %s as %s", e.Actual, e.Expected)
}

// Is reports whether target is ErrInvalidArgument.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// narrow asserts inst to the casting interface C (for example
// interface{ AsSprite2D() *engine.Sprite2D }). A nil interface or a nil
// pointer is reported with actual class "<nil>".
func narrow[C any](inst engine.Instance, expected string) (C, error) {
	var zero C
	if isNil(inst) {
		return zero, &TypeMismatchError{Actual: "<nil>", Expected: expected}
	}
	c, ok := mostDerived(inst).(C)
	if !ok {
		return zero, &TypeMismatchError{Actual: inst.GetClass(), Expected: expected}
	}
	return c, nil
}

func isNil(inst engine.Instance) bool {
	if inst == nil {
		return true
	}
	v := reflect.ValueOf(inst)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// mostDerived returns the outermost value inst is embedded in, so that a
// pointer to an embedded base part still narrows to its real class.
func mostDerived(inst engine.Instance) engine.Instance {
	if self := inst.AsObject().Self(); self != nil {
		return self
	}
	return inst
}
