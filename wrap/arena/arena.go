// Package arena provides a bump allocator whose allocations live outside
// the Go heap, so their addresses behave like real native pointers: stable
// for the arena's lifetime, invisible to the garbage collector, and reusable
// after a reset. It exists for tests and tools that need genuine
// foreign-looking memory to register in an object map.
package arena

import (
	"fmt"
	"unsafe"
)

// Arena hands out addresses from one contiguous region. It is not safe for
// concurrent use.
type Arena struct {
	buf  []byte
	used int
}

// Alloc reserves size bytes at the given power-of-two alignment and returns
// the address of the reservation.
func (a *Arena) Alloc(size, align int) (uintptr, error) {
	if a.buf == nil {
		return 0, ErrClosed
	}
	if size <= 0 {
		return 0, fmt.Errorf("%w: %d bytes", ErrBadSize, size)
	}
	if align <= 0 || align&(align-1) != 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadAlign, align)
	}

	// Align the address itself, not the offset: the heap-backed fallback
	// region is not necessarily page aligned.
	base := uintptr(unsafe.Pointer(&a.buf[0]))
	off := int((base+uintptr(a.used)+uintptr(align-1))&^uintptr(align-1) - base)
	if off+size > len(a.buf) {
		return 0, fmt.Errorf("%w: need %d bytes, %d left", ErrArenaFull, size, len(a.buf)-a.used)
	}
	a.used = off + size

	return uintptr(unsafe.Pointer(&a.buf[off])), nil
}

// Reset forgets every allocation. Previously returned addresses become
// dangling, exactly like freed native memory: they stay mapped and may be
// handed out again, which makes Reset useful for address-reuse tests.
func (a *Arena) Reset() {
	a.used = 0
}

// Size returns the arena's capacity in bytes.
func (a *Arena) Size() int {
	return len(a.buf)
}

// Used returns the number of bytes reserved so far, alignment padding
// included.
func (a *Arena) Used() int {
	return a.used
}
