// Package client fetches configuration subtrees from a remote configuration
// manager.
//
// A [ManagerClient] resolves the manager's address through a [Locator]
// (environment variable first, well-known file second, polled until found or
// the context deadline expires), performs one request/reply exchange over a
// [transport.RequestReplier], and decodes the reply into a typed
// [configtree.Node].
//
// Each GetConfig call is independent: there is no connection pooling and no
// automatic retry. The only cross-call state is the locator's cached
// endpoint, which the client invalidates when a request times out so the
// next call re-discovers instead of hitting a dead address.
//
// For callers that want to track remote changes over time, [Watcher]
// periodically refetches a path and delivers structural diffs.
package client
