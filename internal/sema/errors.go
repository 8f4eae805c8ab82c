package sema

import (
	"errors"
	"fmt"
)

// ErrUnsupported marks faults: tree shapes the walker cannot proceed
// past. These abort the run through the error channel and are not
// diagnostics about the input program.
var ErrUnsupported = errors.New("unsupported construct")

func faultf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnsupported, fmt.Sprintf(format, args...))
}
