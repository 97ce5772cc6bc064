package service

// ResponseType enumerates the outcomes a service call can report to handlers
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// Forbidden response
	Forbidden

	// NotFound response
	NotFound

	// Success response
	Success

	// Declined response - the provider refused the payment
	Declined

	// Conflict response - another attempt is already in flight
	Conflict

	// NotConfigured response - the provider client has no credentials
	NotConfigured
)

var vals = [...]string{
	"invalid-data",
	"error",
	"forbidden",
	"not-found",
	"success",
	"declined",
	"conflict",
	"not-configured",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}
