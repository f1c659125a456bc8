package quoteclient

import "fmt"

// RemoteRejection is a non-2xx answer from the quote endpoint. Message is the
// endpoint's own explanation and may be empty.
type RemoteRejection struct {
	Status  int
	Message string
}

func (e *RemoteRejection) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("quote rejected with status %d", e.Status)
	}
	return fmt.Sprintf("quote rejected with status %d: %s", e.Status, e.Message)
}

// TransportFailure means no usable answer came back: the call failed or the
// response envelope could not be decoded.
type TransportFailure struct {
	Err error
}

func (e *TransportFailure) Error() string {
	return "quote transport: " + e.Err.Error()
}

func (e *TransportFailure) Unwrap() error {
	return e.Err
}
