package transport

import (
	"context"
	"fmt"

	"github.com/go-zeromq/zmq4"
)

// ZMQ is the native transport of the configuration manager: a ZeroMQ REQ
// socket sending one multipart request and waiting for one multipart reply.
// Each RoundTrip dials a fresh socket, matching the one-exchange-per-call
// contract of [RequestReplier].
type ZMQ struct{}

// NewZMQ returns a ZeroMQ-backed transport.
func NewZMQ() *ZMQ {
	return &ZMQ{}
}

// RoundTrip implements [RequestReplier]. The endpoint is a ZeroMQ address
// such as "tcp://host:5555". A ctx deadline bounds the whole exchange; on
// expiry the error matches context.DeadlineExceeded.
func (t *ZMQ) RoundTrip(ctx context.Context, endpoint string, request [][]byte) ([][]byte, error) {
	sock := zmq4.NewReq(ctx)
	defer sock.Close()

	if err := sock.Dial(endpoint); err != nil {
		return nil, fmt.Errorf("dialing config manager at %s: %w", endpoint, err)
	}

	if err := sock.Send(zmq4.NewMsgFrom(request...)); err != nil {
		return nil, fmt.Errorf("sending request to %s: %w", endpoint, err)
	}

	type received struct {
		msg zmq4.Msg
		err error
	}
	// Recv has no context form; the deferred Close unblocks it when the
	// deadline branch wins.
	done := make(chan received, 1)
	go func() {
		msg, err := sock.Recv()
		done <- received{msg: msg, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		if r.err != nil {
			return nil, fmt.Errorf("receiving reply from %s: %w", endpoint, r.err)
		}
		return r.msg.Frames, nil
	}
}
