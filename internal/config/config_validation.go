// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Key == "" {
		cfg.Key = DefaultKey
	}
}

func (cfg *StructuredConfig) validate() error {
	if cfg.Key == "" || strings.ContainsAny(cfg.Key, " \t\r\n=[]#;") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, cfg.Key)
	}

	if strings.ContainsAny(cfg.Profile, " \t\r\n[]") {
		return fmt.Errorf("%w: %q", ErrInvalidProfile, cfg.Profile)
	}

	if cfg.Output.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.Output.LogLevel); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.Output.LogLevel)
		}
	}

	return nil
}
