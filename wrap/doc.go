// Package wrap implements the object identity map of a native/managed
// interop layer: given the memory address of a foreign (native, non
// garbage-collected) object, it finds the single managed proxy that wraps
// it, even when multiple inheritance makes the same object reachable at
// several numerically different addresses.
//
// # Overview
//
// The map is an open-addressed hash table keyed by native addresses. Each
// bucket holds a chain of records sharing one address; chains come from
// real object co-location (an object embedded at the start of another
// object's storage, or a reused address), never from hash collisions. A
// record is either primary (the proxy's map membership) or an alias (a
// secondary registration for a superclass address that differs from the
// primary address).
//
// # Operations
//
//   - Add(addr, p, c): register a proxy and every alias address reachable
//     through c's superclass graph
//   - Remove(p, c): deregister the proxy and all of its aliases
//   - Find(addr, c): locate the live proxy of class c (or a subclass)
//     wrapping the object at addr
//   - Visit(fn): enumerate every primary record, for bulk sweeps
//
// # Table management
//
// Bucket counts are drawn from a fixed sequence of primes, with double
// hashing producing a full-period probe sequence. A removal that empties a
// chain leaves the bucket "stale" (key kept, chain empty) so that probe
// sequences crossing it stay repeatable; stale buckets are only reclaimed by
// a rebuild. After an insertion consumes an unused or stale bucket the map
// rebuilds, either at the same size (dropping staleness) or at the next
// prime, keeping at least 12% of buckets unused.
//
// # Concurrency
//
// The map is not safe for concurrent use. The owning runtime must serialize
// all access; the only supported nesting is a NotifyDestroyed callback
// re-entering Remove during Add's eviction path.
package wrap
