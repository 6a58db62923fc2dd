package wrap

import "errors"

var (
	// ErrLeakedRecords indicates Close found records still registered.
	ErrLeakedRecords = errors.New("wrap: object map closed with records still registered")
)
