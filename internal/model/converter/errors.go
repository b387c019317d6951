package converter

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNotReady = errors.New("currencies are still loading")
	ErrBusy     = errors.New("conversion already in progress")
	ErrClosed   = errors.New("converter is closed")
)

// ValidationError blocks a conversion before any network traffic.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
