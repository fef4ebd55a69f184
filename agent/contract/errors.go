package contract

import "errors"

var (
	// ErrNotFound is a lookup miss. Non-fatal: callers turn it into a
	// user-facing apology and, for security-sensitive flows, end the call.
	ErrNotFound = errors.New("not found in catalog")

	ErrInvalidField      = errors.New("field is not in the recognized set")
	ErrUnsupportedMode   = errors.New("unsupported learning mode")
	ErrUnknownConcept    = errors.New("unknown concept id")
	ErrNoConceptSelected = errors.New("no concept selected")

	// ErrPersistence marks a failed outcome write. Logged, never fatal to the
	// conversation.
	ErrPersistence = errors.New("persistence failed")

	// ErrValidation marks caller/programming misuse of a tool contract.
	ErrValidation = errors.New("validation failed")
)
