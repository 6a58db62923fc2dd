// Package bridge ties the identity map, class descriptors and proxy
// lifecycle together the way an owning interop runtime does: native objects
// are adopted or wrapped into Objects, located by address and class, and
// torn down individually or by a shutdown sweep.
//
// A Bridge owns exactly one wrap.ObjectMap, created with the bridge and
// closed by Shutdown. Like the map it serializes nothing; the embedding
// runtime is expected to hold its own lock around all bridge calls.
package bridge

import (
	"github.com/wrapkit/wrapkit/wrap"
	"github.com/wrapkit/wrapkit/wrap/typedesc"
)

// Bridge is the owning runtime's view of the identity map.
type Bridge struct {
	om *wrap.ObjectMap
}

// New creates a bridge with an empty object map.
func New() *Bridge {
	return &Bridge{om: wrap.New()}
}

// Adopt registers a proxy for a freshly constructed native object. The
// proxy does not carry the share-bucket flag: stale occupants of the
// address are evicted, because a fresh construction there proves the old
// native objects are gone.
func (b *Bridge) Adopt(addr wrap.Addr, t *typedesc.Type) *Object {
	o := &Object{br: b, addr: addr, class: t, refs: 1}
	b.om.Add(addr, o, t)
	return o
}

// Wrap returns the proxy for an existing native object that re-entered the
// managed world: the registered proxy when there is one (with a reference
// added), otherwise a new share-flagged proxy, since the native object may
// legitimately co-locate with others already in the map.
func (b *Bridge) Wrap(addr wrap.Addr, t *typedesc.Type) *Object {
	if p := b.om.Find(addr, t); p != nil {
		o := p.(*Object)
		o.refs++
		return o
	}

	o := &Object{br: b, addr: addr, class: t, refs: 1, share: true}
	b.om.Add(addr, o, t)
	return o
}

// Lookup returns the live proxy of class t (or a subclass) at addr without
// touching reference counts, or nil.
func (b *Bridge) Lookup(addr wrap.Addr, t *typedesc.Type) *Object {
	p := b.om.Find(addr, t)
	if p == nil {
		return nil
	}
	return p.(*Object)
}

// Release drops one reference and reports whether that tore the object
// down. Releasing an already-destroyed object is a no-op.
func (b *Bridge) Release(o *Object) bool {
	if o.refs == 0 {
		return false
	}

	o.refs--
	if o.refs > 0 {
		return false
	}

	o.finalize()
	return true
}

// Shutdown destroys every object still registered and closes the map. The
// sweep collects first and tears down after, so destructors that remove
// other objects are fine.
func (b *Bridge) Shutdown() error {
	var objs []*Object
	b.om.Visit(func(p wrap.Proxy) {
		objs = append(objs, p.(*Object))
	})

	for _, o := range objs {
		o.finalize()
	}

	return b.om.Close()
}

// Abandon drops the map without tearing anything down, for process exit.
func (b *Bridge) Abandon() {
	b.om.Abandon()
}

// Stats reports the underlying table shape.
func (b *Bridge) Stats() wrap.Stats {
	return b.om.Stats()
}
