package homework

import (
	"errors"
	"fmt"
)

var (
	ErrFetch                  = errors.New("failed to fetch homework statuses")
	ErrUnexpectedResponseCode = fmt.Errorf("%w: unexpected response code", ErrFetch)
	ErrShape                  = errors.New("malformed homework API response")
	ErrLookup                 = errors.New("cannot translate homework status")
)
