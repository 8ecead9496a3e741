package engine

import "sort"

// instanceIDCounter is a plain counter (no atomic, the engine is single-threaded).
var instanceIDCounter uint64

func nextInstanceID() uint64 {
	instanceIDCounter++
	return instanceIDCounter
}

// Instance is implemented by every engine object. It is the generic reference
// used wherever the concrete class is not known statically.
//
// Every class struct also exposes a casting accessor named after the class
// (AsNode, AsNode2D, AsSprite2D, ...). The accessors are promoted through
// embedding, so the set of accessors a value has is exactly the set of classes
// it is an instance of.
type Instance interface {
	AsObject() *Object
	GetClass() string
	IsClass(class string) bool
	InstanceID() uint64
}

// Object is the root of the class hierarchy. It carries the runtime class
// identity and a free-form metadata map.
type Object struct {
	id    uint64
	class string
	self  Instance
	meta  map[string]any
}

// NewObject creates a bare Object.
func NewObject() *Object {
	o := &Object{}
	o.initObject(o, ClassObject)
	return o
}

func (o *Object) initObject(self Instance, class string) {
	o.id = nextInstanceID()
	o.class = class
	o.self = self
}

// AsObject returns o.
func (o *Object) AsObject() *Object { return o }

// Self returns the most-derived value this Object is embedded in.
func (o *Object) Self() Instance { return o.self }

// GetClass returns the name of the most-derived class of this object.
func (o *Object) GetClass() string {
	return o.class
}

// IsClass reports whether the object is an instance of class or one of its
// subclasses.
func (o *Object) IsClass(class string) bool {
	return Inherits(o.class, class)
}

// InstanceID returns the unique, non-zero instance identifier.
func (o *Object) InstanceID() uint64 {
	return o.id
}

// SetMeta stores a metadata value under name. A nil value removes the entry.
func (o *Object) SetMeta(name string, value any) {
	if value == nil {
		o.RemoveMeta(name)
		return
	}
	if o.meta == nil {
		o.meta = make(map[string]any)
	}
	o.meta[name] = value
}

// GetMeta returns the metadata value stored under name, or nil.
func (o *Object) GetMeta(name string) any {
	return o.meta[name]
}

// HasMeta reports whether a metadata entry exists for name.
func (o *Object) HasMeta(name string) bool {
	_, ok := o.meta[name]
	return ok
}

// RemoveMeta deletes the metadata entry for name.
func (o *Object) RemoveMeta(name string) {
	delete(o.meta, name)
}

// GetMetaList returns the metadata names in sorted order.
func (o *Object) GetMetaList() []string {
	names := make([]string, 0, len(o.meta))
	for k := range o.meta {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
