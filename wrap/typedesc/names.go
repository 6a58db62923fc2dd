package typedesc

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// DecodeName converts a native class name to a Go string. Foreign runtimes
// hand over names as NUL-terminated Latin-1 byte strings; everything from
// the first NUL on is ignored.
func DecodeName(raw []byte) (string, error) {
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}

	out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("typedesc: decode name: %w", err)
	}
	return string(out), nil
}
