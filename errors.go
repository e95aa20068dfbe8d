package azstore

// Error is a type that allows for error constants below
type Error string

// Error returns a string representation of the error
func (e Error) Error() string { return string(e) }

const (
	// ErrInvalidKey - the account key is not valid base64
	ErrInvalidKey = Error("account key is not valid base64")

	// ErrNoContainer - an operation was called with an empty container name and no default container is configured
	ErrNoContainer = Error("no container specified and no default container configured")
)
