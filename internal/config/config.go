package config

import (
	"time"
)

// Settings is the top-level configuration container for tools built on the
// configuration client. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//
// All env lookups additionally carry the SSCONFIG_ prefix, so e.g. the
// endpoint file is configured via SSCONFIG_DISCOVERY_ENDPOINT_FILE.
type Settings struct {
	// Discovery holds endpoint-discovery settings for locating the
	// configuration manager.
	Discovery Discovery `envPrefix:"DISCOVERY_"`

	// Request holds per-request settings for the manager exchange.
	Request Request `envPrefix:"REQUEST_"`

	// App holds tool-level settings such as the log level.
	App App `envPrefix:"APP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after the values
	// already loaded from environment variables and flags.
	// Populated via SSCONFIG_CONFIG or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Discovery configures how the manager endpoint is located.
type Discovery struct {
	// EndpointEnvVar is the name of the environment variable the manager
	// publishes its endpoint under. Empty means the client default.
	// Env: SSCONFIG_DISCOVERY_ENDPOINT_ENV_VAR
	EndpointEnvVar string `env:"ENDPOINT_ENV_VAR"`

	// EndpointFile is the path of the file the manager publishes its
	// endpoint to. Empty means the client default.
	// Env: SSCONFIG_DISCOVERY_ENDPOINT_FILE
	EndpointFile string `env:"ENDPOINT_FILE"`

	// PollInterval is the delay between discovery probes while neither
	// source is populated (e.g. "1s", "500ms"). Zero means the client
	// default.
	// Env: SSCONFIG_DISCOVERY_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// Timeout bounds the whole discovery loop (e.g. "10s"). Zero means
	// wait indefinitely.
	// Env: SSCONFIG_DISCOVERY_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Request configures the request/reply exchange with the manager.
type Request struct {
	// Timeout is the per-request deadline applied when the caller's
	// context has none (e.g. "5s"). Zero means wait indefinitely.
	// Env: SSCONFIG_REQUEST_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// Transport selects the wire transport: "zmq" (default) or "http"
	// for the HTTP bridge.
	// Env: SSCONFIG_REQUEST_TRANSPORT
	Transport string `env:"TRANSPORT"`
}

// App holds tool-level settings.
type App struct {
	// LogLevel is the zerolog level name ("debug", "info", "warn", ...).
	// Unknown values fall back to "info".
	// Env: SSCONFIG_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Transport names accepted by [Settings.validate]. Empty selects ZeroMQ.
const (
	TransportZMQ  = "zmq"
	TransportHTTP = "http"
)

// GetSettings loads, merges, and validates the tool configuration from all
// available sources. For a field set in several sources the earlier one
// wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *Settings or an error if any source fails to
// load or the final settings fail validation.
func GetSettings() (*Settings, error) {
	return newSettingsBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
