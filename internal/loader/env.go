// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-profile-resolver/internal/osshim"
	"github.com/caarlos0/env/v11"
)

const (
	// ProfileVar names the environment variable selecting the profile.
	ProfileVar = "AWS_PROFILE"
	// ConfigFileVar names the environment variable holding the config file path.
	ConfigFileVar = "AWS_CONFIG_FILE"
	// CredentialsFileVar names the environment variable holding the
	// credentials file path.
	CredentialsFileVar = "AWS_SHARED_CREDENTIALS_FILE"

	// DefaultConfigFile is used when AWS_CONFIG_FILE is unset or empty.
	DefaultConfigFile = "~/.aws/config"
	// DefaultCredentialsFile is used when AWS_SHARED_CREDENTIALS_FILE is unset
	// or empty.
	DefaultCredentialsFile = "~/.aws/credentials"
)

// EnvConfig holds the loader settings taken from the environment.
//
// Struct tags are interpreted by caarlos0/env; empty variables fall back to
// their envDefault.
type EnvConfig struct {
	// Profile is the name of the selected profile.
	Profile string `env:"AWS_PROFILE" envDefault:"default"`

	// ConfigFile is the path of the shared configuration file. A leading "~"
	// is expanded to the home directory.
	ConfigFile string `env:"AWS_CONFIG_FILE" envDefault:"~/.aws/config"`

	// CredentialsFile is the path of the shared credentials file. A leading
	// "~" is expanded to the home directory.
	CredentialsFile string `env:"AWS_SHARED_CREDENTIALS_FILE" envDefault:"~/.aws/credentials"`
}

// ParseEnv reads an [EnvConfig] from e only; the process environment is not
// consulted. Home-relative paths are expanded using HOME or USERPROFILE from e.
func ParseEnv(e osshim.Env) (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: e.Map()}); err != nil {
		return EnvConfig{}, fmt.Errorf("%w: %w", ErrInvalidEnvironment, err)
	}

	cfg.ConfigFile = expandHome(cfg.ConfigFile, e)
	cfg.CredentialsFile = expandHome(cfg.CredentialsFile, e)

	return cfg, nil
}

// expandHome replaces a leading "~" with the home directory. The path is
// returned unchanged when it is not home-relative or no home is known.
func expandHome(path string, e osshim.Env) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}

	home, ok := osshim.HomeDir(e)
	if !ok {
		return path
	}

	return filepath.Join(home, path[1:])
}
