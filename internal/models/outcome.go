package models

// Outcome is the result of one operation attempt. It is the sole basis for
// the emitted action outputs and the process exit code.
type Outcome struct {
	// Succeeded reports whether the operation is considered successful.
	// An HTTP 400 from the add endpoint still counts as success when the
	// library already exists.
	Succeeded bool

	// StatusCode is the HTTP status of the exchange, or 0 when no exchange
	// happened (validation or transport failure).
	StatusCode int

	// Message is a human-readable, single-line description.
	Message string
}
