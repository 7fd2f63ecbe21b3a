package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBridgeServer(t *testing.T, status, payload string) (*httptest.Server, *string) {
	t.Helper()
	var requested string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/config", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		requested = string(body)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(bridgeReply{Status: status, Payload: payload})
	}))
	t.Cleanup(srv.Close)
	return srv, &requested
}

func TestHTTPRoundTrip_MapsReplyToFrames(t *testing.T) {
	// Arrange
	srv, requested := newBridgeServer(t, "0", `:{"a":1}`)
	tr := NewHTTP()

	// Act
	frames, err := tr.RoundTrip(context.Background(), srv.URL, [][]byte{[]byte("a/b")})

	// Assert
	require.NoError(t, err)
	require.Len(t, frames, 2)
	assert.Equal(t, "0", string(frames[0]))
	assert.Equal(t, `:{"a":1}`, string(frames[1]))
	assert.Equal(t, "a/b", *requested)
}

func TestHTTPRoundTrip_ErrorStatusPassedThrough(t *testing.T) {
	// Arrange
	srv, _ := newBridgeServer(t, "1", "no such path")
	tr := NewHTTP()

	// Act
	frames, err := tr.RoundTrip(context.Background(), srv.URL, [][]byte{[]byte("missing")})

	// Assert: application errors travel in the frames, not as transport errors
	require.NoError(t, err)
	require.Len(t, frames, 2)
	assert.Equal(t, "1", string(frames[0]))
	assert.Equal(t, "no such path", string(frames[1]))
}

func TestHTTPRoundTrip_BareHostPortNormalised(t *testing.T) {
	// Arrange
	srv, _ := newBridgeServer(t, "0", ":{}")
	tr := NewHTTP()
	bare := srv.Listener.Addr().String() // host:port without scheme

	// Act
	frames, err := tr.RoundTrip(context.Background(), bare, [][]byte{[]byte("p")})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "0", string(frames[0]))
}

func TestHTTPRoundTrip_RejectsMultiFrameRequest(t *testing.T) {
	// Arrange
	tr := NewHTTP()

	// Act
	_, err := tr.RoundTrip(context.Background(), "http://localhost:1", [][]byte{[]byte("a"), []byte("b")})

	// Assert
	assert.Error(t, err)
}

func TestHTTPRoundTrip_HTTPErrorIsTransportError(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	tr := NewHTTP()

	// Act
	_, err := tr.RoundTrip(context.Background(), srv.URL, [][]byte{[]byte("p")})

	// Assert
	assert.Error(t, err)
}

func TestHTTPRoundTrip_ContextDeadline(t *testing.T) {
	// Arrange
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	t.Cleanup(func() {
		close(block)
		srv.Close()
	})
	tr := NewHTTP()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// Act
	_, err := tr.RoundTrip(ctx, srv.URL, [][]byte{[]byte("p")})

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"full url", "http://host:8080", "http://host:8080", false},
		{"bare host port", "host:8080", "http://host:8080", false},
		{"trailing slash stripped", "http://host:8080/", "http://host:8080", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
