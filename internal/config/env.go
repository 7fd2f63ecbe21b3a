package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix namespaces every environment lookup done by this package.
const envPrefix = "SSCONFIG_"

// parseEnv populates settings from environment variables using the
// caarlos0/env library. Struct fields are mapped via their `env` and
// `envPrefix` tags defined on [Settings] and its nested types, all under
// the SSCONFIG_ prefix.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(settings any) error {
	err := env.ParseWithOptions(settings, env.Options{Prefix: envPrefix})
	if err != nil {
		return fmt.Errorf("error getting env settings: %w", err)
	}

	return nil
}
