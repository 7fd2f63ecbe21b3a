package transport

import (
	"context"
	"testing"
	"time"

	"github.com/go-zeromq/zmq4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startRepServer runs a one-shot REP loop answering every request with the
// given reply frames and returns the endpoint to dial.
func startRepServer(t *testing.T, reply ...[]byte) string {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	rep := zmq4.NewRep(ctx)
	require.NoError(t, rep.Listen("tcp://127.0.0.1:0"))
	t.Cleanup(func() {
		cancel()
		_ = rep.Close()
	})

	go func() {
		for {
			msg, err := rep.Recv()
			if err != nil {
				return
			}
			_ = rep.Send(zmq4.NewMsgFrom(append([][]byte{msg.Frames[0]}, reply...)...))
		}
	}()

	return "tcp://" + rep.Addr().String()
}

func TestZMQRoundTrip_EchoesFrames(t *testing.T) {
	// Arrange: server replies [echoed request, "0", payload]
	endpoint := startRepServer(t, []byte("0"), []byte(`:{"a":1}`))
	tr := NewZMQ()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Act
	frames, err := tr.RoundTrip(ctx, endpoint, [][]byte{[]byte("some/path")})

	// Assert: trailing two frames carry the manager contract
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(frames), 2)
	assert.Equal(t, "0", string(frames[len(frames)-2]))
	assert.Equal(t, `:{"a":1}`, string(frames[len(frames)-1]))
	assert.Equal(t, "some/path", string(frames[0]))
}

func TestZMQRoundTrip_ContextDeadlineWhileWaiting(t *testing.T) {
	// Arrange: a REP socket that accepts the connection but never replies.
	ctx0, cancel0 := context.WithCancel(context.Background())
	rep := zmq4.NewRep(ctx0)
	require.NoError(t, rep.Listen("tcp://127.0.0.1:0"))
	t.Cleanup(func() {
		cancel0()
		_ = rep.Close()
	})
	endpoint := "tcp://" + rep.Addr().String()

	tr := NewZMQ()
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	// Act
	_, err := tr.RoundTrip(ctx, endpoint, [][]byte{[]byte("p")})

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
