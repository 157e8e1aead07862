package upstream

import (
	"errors"
	"fmt"
)

// Sentinel errors distinguishing the failure classes every caller handles.
var (
	// ErrSessionExpired signals an upstream 401/403. The auth gate tears
	// the session down when it sees this, regardless of the response body.
	ErrSessionExpired = errors.New("session expired")

	// ErrUnavailable signals a transport-level failure before any HTTP
	// status was received.
	ErrUnavailable = errors.New("platform unreachable")
)

// Rejection is a business refusal: the platform answered, but said no.
// Message carries the server-provided text when present.
type Rejection struct {
	StatusCode int
	Message    string
}

func (e *Rejection) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("platform rejected request (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("platform rejected request (%d)", e.StatusCode)
}

// AsRejection unwraps a Rejection from err, if one is there.
func AsRejection(err error) (*Rejection, bool) {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}
