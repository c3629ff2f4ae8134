package editor

import (
	"errors"
	"fmt"
)

// ValidationError reports form input that cannot become a device. The
// editor's state is unchanged when Submit returns one.
type ValidationError struct {
	Field   Field  // Field holding the offending text
	Value   string // Text as entered
	Message string // Human-readable reason
	Err     error  // Underlying parse or range error (if any)
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field.Title(), e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a *ValidationError
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// ErrNoStore is returned by Save and Load when the editor has no store.
var ErrNoStore = errors.New("no save directory configured")
