package config

import (
	"flag"
	"time"
)

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-garmin-email Garmin Connect account email
//	-garmin-url Garmin Connect API base URL
//	-notion-url Notion API base URL
//	-hr-db Notion heart-rate database ID
//	-resp-db Notion respiration database ID
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
//	-env-file path to a .env file
//
// Secrets (the Garmin password and the Notion token) are deliberately not
// accepted as flags so they never appear in the process argument list.
func parseFlags(args []string) (*Config, error) {
	var garminEmail string
	var garminBaseURL string
	var notionBaseURL string
	var heartRateDBID string
	var respirationDBID string
	var requestTimeout time.Duration
	var envFilePath string

	fs := flag.NewFlagSet("healthsync", flag.ContinueOnError)
	fs.StringVar(&garminEmail, "garmin-email", "", "Garmin Connect account email")
	fs.StringVar(&garminBaseURL, "garmin-url", "", "Garmin Connect API base URL")
	fs.StringVar(&notionBaseURL, "notion-url", "", "Notion API base URL")
	fs.StringVar(&heartRateDBID, "hr-db", "", "Notion heart-rate database ID")
	fs.StringVar(&respirationDBID, "resp-db", "", "Notion respiration database ID")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&envFilePath, "env-file", "", ".env file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &Config{
		Garmin: Garmin{
			Email:   garminEmail,
			BaseURL: garminBaseURL,
		},
		Notion: Notion{
			HeartRateDBID:   heartRateDBID,
			RespirationDBID: respirationDBID,
			BaseURL:         notionBaseURL,
		},
		HTTP: HTTP{
			RequestTimeout: requestTimeout,
		},
		EnvFilePath: envFilePath,
	}, nil
}
