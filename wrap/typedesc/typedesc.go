// Package typedesc provides a statically-built implementation of the
// wrap.Class descriptor: an immutable type graph with per-base byte offsets,
// from which superclass casts are computed.
//
// Descriptors mirror how native single-inheritance-first layouts work: the
// first base of a type always sits at offset 0, later bases may be displaced.
// Cast resolution follows the first discovered path through the base graph,
// matching how a generated native cast would pick one sub-object for an
// ambiguous diamond.
package typedesc

import "github.com/wrapkit/wrapkit/wrap"

// Base names a direct superclass and the byte displacement of its sub-object
// within the deriving type.
type Base struct {
	Type   *Type
	Offset int64
}

// Type is an immutable class descriptor. Build them with New; descriptor
// identity is pointer identity.
type Type struct {
	name   string
	bases  []Base
	supers []wrap.Class
}

// New builds a descriptor for name deriving from the given bases, in
// declaration order. It panics when the first base is displaced: a first
// base at a non-zero offset breaks the layout convention the alias
// resolver depends on.
func New(name string, bases ...Base) *Type {
	if name == "" {
		panic("typedesc: empty type name")
	}
	if len(bases) > 0 && bases[0].Offset != 0 {
		panic("typedesc: first base of " + name + " must be at offset 0")
	}
	for _, b := range bases {
		if b.Type == nil {
			panic("typedesc: nil base type on " + name)
		}
		if b.Offset < 0 {
			panic("typedesc: negative base offset on " + name)
		}
	}

	t := &Type{name: name, bases: append([]Base(nil), bases...)}
	for _, b := range t.bases {
		t.supers = append(t.supers, b.Type)
	}
	return t
}

// Name implements wrap.Class.
func (t *Type) Name() string { return t.name }

// Supers implements wrap.Class, returning the direct bases in declaration
// order.
func (t *Type) Supers() []wrap.Class { return t.supers }

// Cast implements wrap.Class. It returns the address of the target base
// sub-object within the object whose most-derived address is addr, or addr
// unchanged when target is not an ancestor of t.
func (t *Type) Cast(addr wrap.Addr, target wrap.Class) wrap.Addr {
	tt, ok := target.(*Type)
	if !ok {
		return addr
	}
	if off, ok := t.offsetTo(tt); ok {
		return addr + wrap.Addr(off)
	}
	return addr
}

// DerivesFrom reports whether t is target or has target anywhere in its
// base graph.
func (t *Type) DerivesFrom(target *Type) bool {
	_, ok := t.offsetTo(target)
	return ok
}

// offsetTo accumulates base offsets along the first depth-first path from t
// to target.
func (t *Type) offsetTo(target *Type) (int64, bool) {
	if t == target {
		return 0, true
	}
	for _, b := range t.bases {
		if off, ok := b.Type.offsetTo(target); ok {
			return b.Offset + off, true
		}
	}
	return 0, false
}
