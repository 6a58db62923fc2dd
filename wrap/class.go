package wrap

// Addr is a native memory address used as an identity key. The zero address
// is never registered; the map uses it to mark unoccupied buckets.
type Addr uintptr

// Class describes a native class to the map: its ordered direct
// superclasses and how an address is adjusted when cast to one of them.
//
// Supers returns the direct superclasses in declaration order. Under the
// single-inheritance-first layout convention the first superclass is never
// displaced relative to the derived object, so Cast must return addr
// unchanged for it.
type Class interface {
	// Name returns the class name, for diagnostics only.
	Name() string

	// Supers returns the ordered direct superclasses. An empty slice means
	// the class has no superclasses.
	Supers() []Class

	// Cast returns the address of the target superclass sub-object within
	// the object whose most-derived address is addr. Cast is only called
	// with targets reachable through the receiver's superclass graph.
	Cast(addr Addr, target Class) Addr
}

// Proxy is the managed-side object standing in for a native object. The map
// consults these methods during lookup and lifecycle handling; none of them
// may call back into the map except NotifyDestroyed.
type Proxy interface {
	// Addr returns the proxy's primary native address, or 0 once the native
	// object has been destructed.
	Addr() Addr

	// Live reports whether the proxy is fully constructed and not in the
	// middle of being torn down. A dead proxy can still be chained in the
	// map during re-entrant destructor calls.
	Live() bool

	// InstanceOf reports whether the proxy's runtime class is c or a
	// subclass of c.
	InstanceOf(c Class) bool

	// SharesBucket reports whether the proxy may legitimately share a
	// bucket with records already registered at its address. Without the
	// flag an occupied bucket is treated as a reused address and its chain
	// is evicted.
	SharesBucket() bool

	// InMap and SetInMap track map membership. The map maintains the flag
	// through Add and Remove; the owning runtime must not change it.
	InMap() bool
	SetInMap(bool)

	// NotifyDestroyed is invoked when the proxy's record is forcibly
	// evicted by a new registration at a reused address. The callback runs
	// after the chain has been unlinked from its bucket, so it may safely
	// re-enter Remove.
	NotifyDestroyed()
}
