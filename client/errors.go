package client

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the client. Callers should match with
// [errors.Is].
var (
	// ErrDiscoveryTimeout is returned by [Locator.Locate] when the context
	// deadline expires before any discovery source yields an endpoint.
	ErrDiscoveryTimeout = errors.New("timed out while trying to find config manager endpoint")

	// ErrRequestTimeout is returned by [ManagerClient.GetConfig] when no
	// reply arrives within the request deadline. The cached endpoint is
	// invalidated before this error is returned.
	ErrRequestTimeout = errors.New("timed out while waiting for response from config manager")

	// ErrMalformedReply is returned when a reply does not carry the two
	// trailing frames (status code and payload) the protocol requires.
	ErrMalformedReply = errors.New("malformed config manager reply")
)

// RemoteError is returned when the configuration manager explicitly rejects
// a request: the reply's status frame is non-zero and the payload frame
// carries the server-authored message, passed through verbatim.
type RemoteError struct {
	// Status is the literal status frame content.
	Status string
	// Message is the server's error text.
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("config manager rejected request (status %s): %s", e.Status, e.Message)
}
