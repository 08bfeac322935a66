// Package queryparams turns raw query-string values into typed values
// without panicking on malformed input.
package queryparams

import (
	"strconv"

	"github.com/Danik911/Boruto-server/internal/myerrors"
)

// ParseInt returns def when the parameter was not sent at all. A present
// value that is not a base-10 integer yields an ErrInvalidInput request
// error, including an empty or space-padded value.
func ParseInt(raw string, present bool, def int) (int, error) {
	if !present {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, myerrors.NewInvalidInputError()
	}
	return value, nil
}
