package jobs

import "fmt"

// ServiceErrorKind classifies job-search failures.
type ServiceErrorKind string

// Failure kinds for the job-search service.
const (
	// KindTransport covers network errors, timeouts and unexpected HTTP
	// statuses.
	KindTransport ServiceErrorKind = "transport"
	// KindAuthorization is an upstream credential rejection, surfaced
	// distinctly from generic service failures.
	KindAuthorization ServiceErrorKind = "authorization"
	// KindMalformed is a response whose result collection is not a sequence.
	KindMalformed ServiceErrorKind = "malformed"
)

// ServiceError represents a failed job-search call. Callers must clear the
// visible job list rather than leave stale results on screen.
type ServiceError struct {
	Kind    ServiceErrorKind
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job search failed (%s): %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("job search failed (%s): %s", e.Kind, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}
