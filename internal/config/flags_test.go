package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, settings *Settings)
	}{
		{
			name: "all flags set",
			args: []string{
				"-endpoint-env", "MANAGER_ENDPOINT",
				"-endpoint-file", "/run/manager_endpoint",
				"-poll-interval", "500ms",
				"-discovery-timeout", "10s",
				"-request-timeout", "5s",
				"-transport", "http",
				"-log-level", "debug",
				"-c", "/path/to/settings.json",
			},
			validate: func(t *testing.T, settings *Settings) {
				assert.Equal(t, "MANAGER_ENDPOINT", settings.Discovery.EndpointEnvVar)
				assert.Equal(t, "/run/manager_endpoint", settings.Discovery.EndpointFile)
				assert.Equal(t, 500*time.Millisecond, settings.Discovery.PollInterval)
				assert.Equal(t, 10*time.Second, settings.Discovery.Timeout)
				assert.Equal(t, 5*time.Second, settings.Request.Timeout)
				assert.Equal(t, "http", settings.Request.Transport)
				assert.Equal(t, "debug", settings.App.LogLevel)
				assert.Equal(t, "/path/to/settings.json", settings.JSONFilePath)
			},
		},
		{
			name: "config alias flag",
			args: []string{
				"-config", "/path/to/settings.json",
			},
			validate: func(t *testing.T, settings *Settings) {
				assert.Equal(t, "/path/to/settings.json", settings.JSONFilePath)
			},
		},
		{
			name: "partial flags",
			args: []string{
				"-endpoint-file", "/run/manager_endpoint",
				"-transport", "zmq",
			},
			validate: func(t *testing.T, settings *Settings) {
				assert.Equal(t, "/run/manager_endpoint", settings.Discovery.EndpointFile)
				assert.Equal(t, "zmq", settings.Request.Transport)
				assert.Empty(t, settings.Discovery.EndpointEnvVar)
				assert.Zero(t, settings.Request.Timeout)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, settings *Settings) {
				assert.Equal(t, Discovery{}, settings.Discovery)
				assert.Equal(t, Request{}, settings.Request)
				assert.Equal(t, App{}, settings.App)
				assert.Empty(t, settings.JSONFilePath)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flag.CommandLine for each test
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

			// Set os.Args to simulate command line arguments
			oldArgs := os.Args
			os.Args = append([]string{"cmd"}, tt.args...)
			defer func() { os.Args = oldArgs }()

			settings := ParseFlags()
			require.NotNil(t, settings)
			tt.validate(t, settings)
		})
	}
}
