package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sskit/ssconfig/configtree"
	"github.com/sskit/ssconfig/internal/logger"
	"github.com/sskit/ssconfig/transport"
)

// StatusOK is the status frame content a successful reply carries.
const StatusOK = "0"

// ManagerClient fetches configuration subtrees from the configuration
// manager. Each call performs exactly one request/reply exchange; the only
// state shared between calls is the locator's endpoint cache.
//
// A ManagerClient is safe for concurrent use: concurrent callers each open
// an independent transport exchange.
type ManagerClient struct {
	locator          *Locator
	transport        transport.RequestReplier
	requestTimeout   time.Duration
	discoveryTimeout time.Duration
	log              *logger.Logger
}

// Option customises a [ManagerClient].
type Option func(*ManagerClient)

// WithLocator replaces the default locator.
func WithLocator(l *Locator) Option {
	return func(c *ManagerClient) {
		if l != nil {
			c.locator = l
		}
	}
}

// WithTransport replaces the default ZeroMQ transport.
func WithTransport(t transport.RequestReplier) Option {
	return func(c *ManagerClient) {
		if t != nil {
			c.transport = t
		}
	}
}

// WithRequestTimeout sets the default per-request deadline applied when the
// caller's context has none. Zero means wait indefinitely.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *ManagerClient) { c.requestTimeout = d }
}

// WithDiscoveryTimeout bounds endpoint discovery independently of the
// request deadline. Zero means discovery inherits the caller's context
// as-is.
func WithDiscoveryTimeout(d time.Duration) Option {
	return func(c *ManagerClient) { c.discoveryTimeout = d }
}

// WithLogger attaches a logger to the client.
func WithLogger(log *logger.Logger) Option {
	return func(c *ManagerClient) {
		if log != nil {
			c.log = log
		}
	}
}

// New returns a client with a fresh [Locator] and the ZeroMQ transport
// unless overridden by options.
func New(opts ...Option) *ManagerClient {
	c := &ManagerClient{
		locator:   NewLocator(),
		transport: transport.NewZMQ(),
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetConfig requests the configuration subtree at path and decodes it into
// a [configtree.Node].
//
// On a reply whose status frame is not [StatusOK] it returns a
// *RemoteError carrying the server's message. When no reply arrives before
// the deadline it invalidates the cached endpoint (the manager may have
// moved) and returns an error matching [ErrRequestTimeout]. No retry is
// attempted; callers needing resilience loop externally.
func (c *ManagerClient) GetConfig(ctx context.Context, path string) (*configtree.Node, error) {
	payload, err := c.exchange(ctx, path)
	if err != nil {
		return nil, err
	}

	tree, err := configtree.DeserializeTree(payload)
	if err != nil {
		return nil, fmt.Errorf("decoding config for %q: %w", path, err)
	}
	return tree, nil
}

// GetValue is GetConfig for payloads whose root may be a bare leaf; it
// returns the decoded root value whatever its kind.
func (c *ManagerClient) GetValue(ctx context.Context, path string) (configtree.Value, error) {
	payload, err := c.exchange(ctx, path)
	if err != nil {
		return configtree.Value{}, err
	}

	val, err := configtree.Deserialize(payload)
	if err != nil {
		return configtree.Value{}, fmt.Errorf("decoding config for %q: %w", path, err)
	}
	return val, nil
}

// exchange performs the full request/reply cycle for path and returns the
// raw serialized payload.
func (c *ManagerClient) exchange(ctx context.Context, path string) (string, error) {
	log := logger.Logger{Logger: c.log.With().
		Str("request_id", uuid.NewString()).
		Str("path", path).
		Logger()}

	endpoint, err := c.locate(ctx)
	if err != nil {
		return "", err
	}
	log.Debug().Str("endpoint", endpoint).Msg("connecting to config manager")

	reqCtx := ctx
	if c.requestTimeout > 0 {
		if _, hasDeadline := ctx.Deadline(); !hasDeadline {
			var cancel context.CancelFunc
			reqCtx, cancel = context.WithTimeout(ctx, c.requestTimeout)
			defer cancel()
		}
	}

	frames, err := c.transport.RoundTrip(reqCtx, endpoint, [][]byte{[]byte(path)})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			// the endpoint may be stale or dead; re-discover next time
			c.locator.Invalidate()
			log.Warn().Msg("config request timed out")
			return "", fmt.Errorf("%w at %s", ErrRequestTimeout, endpoint)
		}
		return "", fmt.Errorf("config request for %q: %w", path, err)
	}

	if len(frames) < 2 {
		return "", fmt.Errorf("%w: got %d frames, need at least 2", ErrMalformedReply, len(frames))
	}

	status := string(frames[len(frames)-2])
	payload := string(frames[len(frames)-1])

	if status != StatusOK {
		log.Error().Str("status", status).Str("message", payload).Msg("config request rejected")
		return "", &RemoteError{Status: status, Message: payload}
	}

	log.Debug().Msg("config request succeeded")
	return payload, nil
}

// locate resolves the endpoint, applying the discovery timeout when one is
// configured and the caller's context has no deadline of its own.
func (c *ManagerClient) locate(ctx context.Context) (string, error) {
	if c.discoveryTimeout > 0 {
		if _, hasDeadline := ctx.Deadline(); !hasDeadline {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, c.discoveryTimeout)
			defer cancel()
		}
	}
	return c.locator.Locate(ctx)
}
