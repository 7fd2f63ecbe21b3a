package client

import (
	"context"
	"sync"
	"time"

	"github.com/sskit/ssconfig/configtree"
	"github.com/sskit/ssconfig/internal/logger"
)

// Watcher periodically refetches a configuration path and reports what
// changed between consecutive snapshots as [configtree.Change] sets. It is
// layered on top of the synchronous client: every tick is one independent
// GetConfig call.
type Watcher struct {
	client   *ManagerClient
	path     string
	interval time.Duration
	log      *logger.Logger

	changes chan []configtree.Change

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	current *configtree.Node
}

// NewWatcher creates a watcher for path that polls every interval. The
// watcher is idle until Start is called.
func NewWatcher(c *ManagerClient, path string, interval time.Duration) *Watcher {
	return &Watcher{
		client:   c,
		path:     path,
		interval: interval,
		log:      c.log,
		changes:  make(chan []configtree.Change, 1),
	}
}

// Changes returns the channel on which non-empty change sets are delivered.
// If a change set is not consumed before the next one is produced, the
// older one is dropped.
func (w *Watcher) Changes() <-chan []configtree.Change {
	return w.changes
}

// Snapshot returns the most recently fetched tree, or nil before the first
// successful fetch.
func (w *Watcher) Snapshot() *configtree.Node {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Start stops any previously running watch, then launches a background
// goroutine that refetches the path every interval. If interval is zero or
// negative it defaults to one minute. The goroutine exits when ctx is
// cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	interval := w.interval
	if interval <= 0 {
		interval = time.Minute
	}

	w.Stop()

	w.mu.Lock()
	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		w.tick(watchCtx)
		for {
			select {
			case <-watchCtx.Done():
				return
			case <-t.C:
				w.tick(watchCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has exited.
// Safe to call when the watcher is not running.
func (w *Watcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// tick fetches a fresh snapshot and publishes the diff against the previous
// one. Fetch failures leave the previous snapshot in place.
func (w *Watcher) tick(ctx context.Context) {
	fresh, err := w.client.GetConfig(ctx, w.path)
	if err != nil {
		w.log.Warn().Err(err).Str("path", w.path).Msg("config watch refetch failed")
		return
	}

	w.mu.Lock()
	previous := w.current
	w.current = fresh
	w.mu.Unlock()

	if previous == nil {
		return
	}

	diff := previous.Diff(fresh)
	if len(diff) == 0 {
		return
	}

	select {
	case w.changes <- diff:
	default:
		// drop the stale unconsumed set and publish the newer one
		select {
		case <-w.changes:
		default:
		}
		select {
		case w.changes <- diff:
		default:
		}
	}
}
