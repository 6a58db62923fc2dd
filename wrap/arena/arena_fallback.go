//go:build !unix

package arena

import "fmt"

// New allocates the region from the Go heap on platforms without anonymous
// mmap support. Addresses are stable for the arena's lifetime under the
// current non-moving collector, which is all the tests need.
func New(size int) (*Arena, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrBadSize, size)
	}
	return &Arena{buf: make([]byte, size)}, nil
}

// Close releases the region.
func (a *Arena) Close() error {
	a.buf = nil
	a.used = 0
	return nil
}
