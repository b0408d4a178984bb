// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-profile-resolver/internal/osshim"
	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the RESOLVER_ prefixed variables of environ.
func parseEnv(cfg *StructuredConfig, environ osshim.Env) error {
	err := env.ParseWithOptions(cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ.Map(),
	})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
