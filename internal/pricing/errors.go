package pricing

import "fmt"

// InvalidDataError is a request that is inconsistent with the contribution
// rules. Message is safe to show to the user.
type InvalidDataError struct {
	Message string
}

func (e *InvalidDataError) Error() string {
	return e.Message
}

func invalidData(format string, args ...any) error {
	return &InvalidDataError{Message: fmt.Sprintf(format, args...)}
}
