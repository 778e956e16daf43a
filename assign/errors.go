package assign

import (
	"errors"
	"fmt"
)

// errInvalidArgument is the unexported sentinel wrapped by ErrInvalidArgument.
var errInvalidArgument = errors.New("invalid argument")

// ErrInvalidArgument is returned for a nil/empty cost matrix, or one whose
// rows are not all the same length.
var ErrInvalidArgument = fmt.Errorf("assign: %w", errInvalidArgument)
