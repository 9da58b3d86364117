package config

import "errors"

// Validation errors returned by [Config.validate] when the merged
// configuration is incomplete.
var (
	// ErrMissingCredentials indicates that one or more of the required
	// credentials (Garmin email, Garmin password, Notion token) is absent
	// from every configuration source.
	ErrMissingCredentials = errors.New("missing credentials in configuration")
)
