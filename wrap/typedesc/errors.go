package typedesc

import "errors"

var (
	// ErrDuplicateType indicates a second definition under an existing name.
	ErrDuplicateType = errors.New("typedesc: type already defined")

	// ErrUnknownType indicates a lookup for a name that was never defined.
	ErrUnknownType = errors.New("typedesc: unknown type")
)
