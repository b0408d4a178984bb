// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/go-profile-resolver/internal/osshim"

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "RESOLVER_"

// DefaultKey is the setting resolved when no key is configured.
const DefaultKey = "region"

// StructuredConfig is the top-level configuration of the resolver command.
// It is populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Profile replaces the profile selected through AWS_PROFILE. Empty means
	// no override.
	Profile string `env:"PROFILE"`

	// Key is the setting to resolve. Defaults to [DefaultKey].
	Key string `env:"KEY"`

	// Files overrides the locations of the shared profile files.
	Files Files `envPrefix:"FILES_"`

	// Output controls logging and presentation.
	Output Output `envPrefix:"OUTPUT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the RESOLVER_CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Files holds explicit profile file locations. Empty fields keep the values
// derived from AWS_CONFIG_FILE and AWS_SHARED_CREDENTIALS_FILE.
type Files struct {
	Config      string `env:"CONFIG"`
	Credentials string `env:"CREDENTIALS"`
}

// Output groups presentation settings.
type Output struct {
	// LogLevel is a zerolog level name. Empty means "warn".
	LogLevel string `env:"LOG_LEVEL"`

	// Explain prints the visited profile chain along with the value.
	Explain bool `env:"EXPLAIN"`

	// Copy places the resolved value on the system clipboard.
	Copy bool `env:"COPY"`
}

// ProfileOverride returns the profile override, or nil when none is set.
func (cfg *StructuredConfig) ProfileOverride() *string {
	if cfg.Profile == "" {
		return nil
	}
	name := cfg.Profile
	return &name
}

// GetStructuredConfig assembles the configuration from environ, the
// command-line arguments args (without the program name), and the optional
// JSON file, then validates the result.
func GetStructuredConfig(args []string, environ osshim.Env) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv(environ).
		withFlags(args).
		withJSON().
		build()
}
