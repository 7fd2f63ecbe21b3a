package config

import "fmt"

// validate checks that the final merged [Settings] satisfy all invariants
// before they are used at startup.
//
// Returns nil if the settings are valid, or a descriptive error otherwise.
func (s *Settings) validate() error {
	if s.Discovery.PollInterval < 0 {
		return fmt.Errorf("%w: poll interval must not be negative, got %s",
			ErrInvalidDiscoverySettings, s.Discovery.PollInterval)
	}
	if s.Discovery.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative, got %s",
			ErrInvalidDiscoverySettings, s.Discovery.Timeout)
	}

	if s.Request.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative, got %s",
			ErrInvalidRequestSettings, s.Request.Timeout)
	}

	switch s.Request.Transport {
	case "", TransportZMQ, TransportHTTP:
	default:
		return fmt.Errorf("%w: unknown transport %q",
			ErrInvalidRequestSettings, s.Request.Transport)
	}

	return nil
}
