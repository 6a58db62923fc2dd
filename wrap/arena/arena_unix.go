//go:build unix

package arena

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// New maps an anonymous region of the given size. The memory is not part of
// the Go heap; the garbage collector never sees it.
func New(size int) (*Arena, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrBadSize, size)
	}

	buf, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("arena: mmap failed: %w", err)
	}

	return &Arena{buf: buf}, nil
}

// Close unmaps the region. Every address the arena handed out becomes
// invalid.
func (a *Arena) Close() error {
	if a.buf == nil {
		return nil
	}
	buf := a.buf
	a.buf = nil
	a.used = 0
	return unix.Munmap(buf)
}
