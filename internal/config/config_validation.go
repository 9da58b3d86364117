// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [Config] carries every credential
// the run cannot proceed without. It runs before any network call, so a
// misconfigured process fails fast with a list of the missing variables.
//
// The two database IDs are intentionally not validated: an absent ID
// disables that half of the sync rather than the whole run.
func (cfg *Config) validate() error {
	var missing []string

	if cfg.Garmin.Email == "" {
		missing = append(missing, "GARMIN_EMAIL")
	}
	if cfg.Garmin.Password == "" {
		missing = append(missing, "GARMIN_PASSWORD")
	}
	if cfg.Notion.Token == "" {
		missing = append(missing, "NOTION_TOKEN")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}

	return nil
}
