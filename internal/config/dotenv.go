package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// defaultEnvFile is the path checked when no ENV_FILE / -env-file value
// was provided.
const defaultEnvFile = ".env"

// parseEnvFile reads a dotenv file and maps its variables onto a [Config]
// through the same env tags used for the process environment. The file
// never touches the process environment, so real environment variables
// keep priority in the merge.
//
// Returns (nil, nil) when the file does not exist.
func parseEnvFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("error reading env file %s: %w", path, err)
	}

	fileCfg := &Config{}
	err = env.ParseWithOptions(fileCfg, env.Options{Environment: vars})
	if err != nil {
		return nil, fmt.Errorf("error parsing env file %s: %w", path, err)
	}

	return fileCfg, nil
}
