package bridge

import (
	"github.com/wrapkit/wrapkit/wrap"
	"github.com/wrapkit/wrapkit/wrap/typedesc"
)

// Object is the concrete managed proxy for one native object. Its liveness
// is a reference count: an Object with no outstanding references is being
// torn down and no longer matches lookups.
type Object struct {
	br    *Bridge
	addr  wrap.Addr
	class *typedesc.Type
	refs  int
	share bool
	inMap bool
	dtor  func(*Object)
}

// Addr implements wrap.Proxy.
func (o *Object) Addr() wrap.Addr { return o.addr }

// Live implements wrap.Proxy.
func (o *Object) Live() bool { return o.refs > 0 }

// InstanceOf implements wrap.Proxy.
func (o *Object) InstanceOf(c wrap.Class) bool {
	t, ok := c.(*typedesc.Type)
	return ok && o.class.DerivesFrom(t)
}

// SharesBucket implements wrap.Proxy.
func (o *Object) SharesBucket() bool { return o.share }

// InMap implements wrap.Proxy.
func (o *Object) InMap() bool { return o.inMap }

// SetInMap implements wrap.Proxy.
func (o *Object) SetInMap(v bool) { o.inMap = v }

// NotifyDestroyed implements wrap.Proxy: the map evicted this object's
// record because a new native object was constructed at its address, so the
// rest of the teardown runs now.
func (o *Object) NotifyDestroyed() { o.finalize() }

// Class returns the object's descriptor.
func (o *Object) Class() *typedesc.Type { return o.class }

// Refs returns the outstanding reference count.
func (o *Object) Refs() int { return o.refs }

// Retain adds a reference.
func (o *Object) Retain() { o.refs++ }

// OnDestroy installs a destructor hook, run once when the object is torn
// down. The hook may call back into the bridge.
func (o *Object) OnDestroy(fn func(*Object)) { o.dtor = fn }

// finalize tears the object down: mark it dead, run the destructor, take it
// out of the map, drop the native address. Safe to reach twice; the second
// call finds the address already gone.
func (o *Object) finalize() {
	if o.addr == 0 {
		return
	}

	o.refs = 0

	// The destructor may re-enter the bridge; the object is already dead
	// to lookups at this point.
	if o.dtor != nil {
		o.dtor(o)
	}

	o.br.om.Remove(o, o.class)
	o.addr = 0
}
