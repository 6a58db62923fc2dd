package arena

import "errors"

var (
	// ErrArenaFull indicates the region has no room for the request.
	ErrArenaFull = errors.New("arena: out of space")

	// ErrBadAlign indicates a non-power-of-two or non-positive alignment.
	ErrBadAlign = errors.New("arena: alignment must be a power of two")

	// ErrBadSize indicates a non-positive size.
	ErrBadSize = errors.New("arena: size must be positive")

	// ErrClosed indicates an allocation from a closed arena.
	ErrClosed = errors.New("arena: closed")
)
