// Package transport defines the request/reply channel the ssconfig client
// speaks over, together with its ZeroMQ and HTTP-bridge implementations.
//
// The channel is message-oriented: one request of one or more frames, one
// reply of one or more frames, no streaming. The configuration manager's
// contract lives in the trailing two reply frames (a status code and a
// payload); everything before them is transport headroom and passed through
// untouched.
package transport

import "context"

// RequestReplier performs exactly one request/reply exchange against the
// given endpoint. Implementations open a fresh exchange per call and must
// honour ctx cancellation and deadlines; no connection state is shared
// between calls.
type RequestReplier interface {
	RoundTrip(ctx context.Context, endpoint string, request [][]byte) ([][]byte, error)
}
