package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-endpoint-env name of the env var the manager publishes its endpoint under
//	-endpoint-file path of the file the manager publishes its endpoint to
//	-poll-interval discovery probe interval (e.g., "1s", "500ms")
//	-discovery-timeout bound on the whole discovery loop (e.g., "10s")
//	-request-timeout per-request deadline (e.g., "5s")
//	-transport wire transport: "zmq" or "http"
//	-log-level zerolog level name
//	-c/-config json file path with settings
func ParseFlags() *Settings {
	var endpointEnvVar string
	var endpointFile string
	var pollInterval time.Duration
	var discoveryTimeout time.Duration
	var requestTimeout time.Duration
	var transportName string
	var logLevel string
	var jsonConfigPath string

	flag.StringVar(&endpointEnvVar, "endpoint-env", "", "Endpoint env var name")
	flag.StringVar(&endpointFile, "endpoint-file", "", "Endpoint file path")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "Discovery poll interval (e.g., 1s, 500ms)")
	flag.DurationVar(&discoveryTimeout, "discovery-timeout", 0, "Discovery timeout (e.g., 10s)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 5s)")
	flag.StringVar(&transportName, "transport", "", "Wire transport: zmq or http")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &Settings{
		Discovery: Discovery{
			EndpointEnvVar: endpointEnvVar,
			EndpointFile:   endpointFile,
			PollInterval:   pollInterval,
			Timeout:        discoveryTimeout,
		},
		Request: Request{
			Timeout:   requestTimeout,
			Transport: transportName,
		},
		App: App{
			LogLevel: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}
}
