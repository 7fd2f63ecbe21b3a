// Package config provides configuration loading, merging, and validation
// for tools built on the configuration client.
//
// Settings are assembled from multiple sources; when the same field is set
// in more than one source, the earlier source wins:
//  1. Environment variables (SSCONFIG_* prefix)
//  2. Command-line flags
//  3. JSON config file (path resolved from sources 1 and 2)
//
// The main entry point is [GetSettings].
package config
