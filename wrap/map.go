package wrap

import "fmt"

// ObjectMap maps native addresses to the managed proxies wrapping them. The
// zero value is not usable; create maps with New.
//
// An ObjectMap is meant to be owned by a single interop runtime instance,
// created at runtime init and closed at runtime shutdown. It performs no
// internal locking; see the package documentation for the concurrency
// contract.
type ObjectMap struct {
	buckets  []bucket
	size     uint64
	unused   uint64
	stale    uint64
	primeIdx int
	records  int
	rebuilds int
}

// New creates an empty object map at the smallest table size.
func New() *ObjectMap {
	om := &ObjectMap{}
	om.size = hashPrimes[0]
	om.unused = om.size
	om.buckets = make([]bucket, om.size)
	return om
}

// Add registers p as the proxy for the native object at addr, then
// registers an alias for every superclass address that differs from addr.
// c must be p's own (most derived) class descriptor, and addr must be
// non-zero.
//
// If the bucket at addr (or at an alias address) is already occupied and p
// does not carry the share-bucket flag, the existing chain is evicted
// first: alias records are dropped and primary records get their
// NotifyDestroyed callback, which may re-enter Remove before Add returns.
func (om *ObjectMap) Add(addr Addr, p Proxy, c Class) {
	om.insert(newPrimary(p), addr)
	om.addAliases(p, addr, c, c)
	p.SetInMap(true)
}

// Remove takes p and all of its aliases out of the map, returning true on
// success. Removing a proxy that was never added is a successful no-op;
// false means p was flagged as registered but its primary record could not
// be found, which indicates the add/remove contract was broken.
func (om *ObjectMap) Remove(p Proxy, c Class) bool {
	if !p.InMap() {
		return true
	}

	addr := p.Addr()

	// Alias teardown runs to completion even when entries are missing; the
	// table may already be inconsistent during teardown races.
	om.removeAliases(p, addr, c, c)

	ok := om.removeAt(p, addr)
	p.SetInMap(false)
	return ok
}

// Find returns the proxy of class c, or of a subclass of c, wrapping the
// native object at addr. A nil result means no such proxy is registered;
// that is a normal outcome, not an error.
func (om *ObjectMap) Find(addr Addr, c Class) Proxy {
	he := om.findBucket(addr)

	// Go through each record at this address. Aliases resolve to their
	// primary's proxy.
	for sw := he.first; sw != nil; sw = sw.next {
		p := sw.proxy

		// A proxy that is no longer live is in the process of being torn
		// down; it can still be chained here during re-entrant destructor
		// calls.
		if !p.Live() {
			continue
		}

		// Skip it if the native address is no longer valid.
		if p.Addr() == 0 {
			continue
		}

		if p.InstanceOf(c) {
			return p
		}
	}

	return nil
}

// Len returns the number of records currently registered, aliases included.
func (om *ObjectMap) Len() int {
	return om.records
}

// Close releases the bucket array. It fails with ErrLeakedRecords when
// records are still registered, meaning the owning runtime did not remove
// every proxy it added.
func (om *ObjectMap) Close() error {
	if om.records != 0 {
		return fmt.Errorf("%w: %d records left", ErrLeakedRecords, om.records)
	}
	om.buckets = nil
	return nil
}

// Abandon drops all records without the leak check. It is meant for process
// exit, where the native memory behind the records is going away wholesale
// and individual teardown is pointless.
func (om *ObjectMap) Abandon() {
	om.buckets = nil
	om.records = 0
}

// insert links rec into the bucket for addr. This is the single insertion
// path for primary and alias records alike.
func (om *ObjectMap) insert(rec *record, addr Addr) {
	he := om.findBucket(addr)

	// An occupied bucket means there appear to be several objects at the
	// same address. That happens for three reasons: an object of one class
	// is embedded at the start of another object's storage; the old native
	// object was deleted without the map hearing of it and a new one was
	// constructed at the same address; or an object being torn down got
	// wrapped again because its native destructor called back into the
	// managed side. A record without the share-bucket flag marks a fresh
	// native construction, so the old occupants are evicted and the bucket
	// reused. Otherwise the record joins the chain.
	if he.first != nil {
		if !rec.share {
			om.evict(he)
		}

		rec.next = he.first
		he.first = rec
		om.records++
		return
	}

	if he.key == 0 {
		he.key = addr
		om.unused--
	} else if om.stale > 0 {
		// The bucket can be keyed but uncounted when an eviction callback
		// re-registered at this address before the outer Add finished, so
		// the counter is clamped rather than trusted blindly.
		om.stale--
	}

	he.first = rec
	rec.next = nil
	om.records++

	om.reorganise()
}

// evict tears down the chain of an occupied bucket ahead of address reuse.
// The chain is unlinked before any callback runs: a destroy callback may
// re-enter Remove, and must not find the chain it is part of still hanging
// off the bucket.
func (om *ObjectMap) evict(he *bucket) {
	sw := he.first
	he.first = nil

	for sw != nil {
		next := sw.next
		om.records--

		if !sw.alias {
			sw.proxy.NotifyDestroyed()
		}

		sw = next
	}
}

// removeAt unlinks the record belonging to p from the chain at addr.
func (om *ObjectMap) removeAt(p Proxy, addr Addr) bool {
	if addr == 0 {
		return false
	}

	he := om.findBucket(addr)

	for swp := &he.first; *swp != nil; swp = &(*swp).next {
		sw := *swp

		// A record is matched through its proxy: for an alias that is the
		// back-reference to its primary, which matters because one bucket
		// can hold aliases for several different primaries.
		if sw.proxy != p {
			continue
		}

		*swp = sw.next
		om.records--

		// An emptied bucket is counted as stale rather than unused. The
		// key stays set: clearing it would cut short the probe sequence of
		// any entry that wanted this bucket, found it occupied and was put
		// further along. Searches must stay repeatable until the next
		// rebuild.
		if he.first == nil {
			om.stale++
		}

		return true
	}

	return false
}
