package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*Config
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Config, 0, 3),
	}
}

func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(Config)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

// withEnvFile appends a config parsed from a .env file as the lowest
// priority source. The file path is resolved from the sources already
// collected; a missing file is not an error, matching the usual dotenv
// behaviour of running the same binary with and without a local .env.
func (b *configBuilder) withEnvFile() *configBuilder {
	envFilePath := defaultEnvFile
	for _, cfg := range b.configs {
		if cfg.EnvFilePath != "" {
			envFilePath = cfg.EnvFilePath
		}
	}

	fileCfg, err := parseEnvFile(envFilePath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if fileCfg != nil {
		b.configs = append(b.configs, fileCfg)
	}

	return b
}
