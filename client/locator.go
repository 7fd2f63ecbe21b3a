package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/sskit/ssconfig/internal/logger"
)

// Discovery defaults. The manager publishes its endpoint either in the
// environment or in a well-known file; both are plain address strings.
const (
	DefaultEndpointEnvVar = "SS_CONFIG_MANAGER_ENDPOINT"
	DefaultEndpointFile   = "/tmp/ss_config_manager_endpoint"

	defaultPollInterval = time.Second
)

var errEndpointUnavailable = errors.New("config manager endpoint not published yet")

// Locator discovers the configuration manager's endpoint and caches it.
// The cache is instance-owned, mutex-guarded state: Invalidate may race a
// concurrent Locate, in which case the last writer wins.
type Locator struct {
	envVar       string
	file         string
	pollInterval time.Duration
	log          *logger.Logger

	mu       sync.Mutex
	endpoint string
}

// LocatorOption customises a [Locator].
type LocatorOption func(*Locator)

// WithEndpointEnvVar overrides the environment variable consulted first
// during discovery.
func WithEndpointEnvVar(name string) LocatorOption {
	return func(l *Locator) { l.envVar = name }
}

// WithEndpointFile overrides the fallback file consulted when the
// environment variable is unset.
func WithEndpointFile(path string) LocatorOption {
	return func(l *Locator) { l.file = path }
}

// WithPollInterval overrides the delay between discovery attempts.
func WithPollInterval(d time.Duration) LocatorOption {
	return func(l *Locator) {
		if d > 0 {
			l.pollInterval = d
		}
	}
}

// WithLocatorLogger attaches a logger to the locator.
func WithLocatorLogger(log *logger.Logger) LocatorOption {
	return func(l *Locator) {
		if log != nil {
			l.log = log
		}
	}
}

// NewLocator returns a locator with the default discovery sources and a
// 1-second poll interval.
func NewLocator(opts ...LocatorOption) *Locator {
	l := &Locator{
		envVar:       DefaultEndpointEnvVar,
		file:         DefaultEndpointFile,
		pollInterval: defaultPollInterval,
		log:          logger.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Locate returns the configuration manager's endpoint, from the cache when
// warm. Each discovery attempt reads the environment variable, then the
// fallback file; attempts repeat at the poll interval until a source yields
// a value or ctx expires, in which case the error matches
// [ErrDiscoveryTimeout]. A context with no deadline polls indefinitely; an
// already-expired context fails immediately.
func (l *Locator) Locate(ctx context.Context) (string, error) {
	l.mu.Lock()
	if l.endpoint != "" {
		ep := l.endpoint
		l.mu.Unlock()
		return ep, nil
	}
	l.mu.Unlock()

	var found string
	err := retry.Do(ctx, retry.NewConstant(l.pollInterval), func(ctx context.Context) error {
		l.log.Debug().Msg("looking for config manager")
		ep := l.probe()
		if ep == "" {
			return retry.RetryableError(errEndpointUnavailable)
		}
		found = ep
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDiscoveryTimeout, err)
	}

	l.log.Info().Str("endpoint", found).Msg("config manager endpoint found")

	l.mu.Lock()
	l.endpoint = found
	l.mu.Unlock()
	return found, nil
}

// Invalidate clears the cached endpoint so the next Locate re-discovers.
func (l *Locator) Invalidate() {
	l.mu.Lock()
	l.endpoint = ""
	l.mu.Unlock()
}

// probe checks the discovery sources once: environment variable first, then
// the fallback file (trimmed of surrounding whitespace). Returns "" when
// neither yields a value.
func (l *Locator) probe() string {
	if ep := os.Getenv(l.envVar); ep != "" {
		return ep
	}
	data, err := os.ReadFile(l.file)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
