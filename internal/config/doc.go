// Package config provides configuration loading, merging, and validation
// for the health sync application.
//
// Configuration is assembled from multiple sources in the following
// priority order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. A .env file (same variable names as the environment)
//
// The main entry point is [GetConfig], which returns a fully populated and
// validated *Config or an error when required credentials are missing.
package config
