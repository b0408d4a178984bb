// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"slices"

	"dario.cat/mergo"
	"github.com/MKhiriev/go-profile-resolver/internal/osshim"
)

// configBuilder accumulates partial configurations from several sources and
// merges them in order: env, then JSON, then flags. Errors from any step are
// joined and reported by build.
type configBuilder struct {
	configs []*StructuredConfig
	// flagsAt is the index of the flags config in configs, or -1.
	flagsAt int
	// pins are applied after merging. They carry flags set explicitly to a
	// zero value, which mergo would otherwise skip.
	pins []func(*StructuredConfig)
	err  error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 3),
		flagsAt: -1,
	}
}

// build merges all collected configs so that later sources override earlier
// non-zero fields, applies defaults and validates the result.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	for _, pin := range b.pins {
		pin(config)
	}

	config.applyDefaults()
	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withEnv(environ osshim.Env) *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg, environ); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, pins, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.flagsAt = len(b.configs)
	b.configs = append(b.configs, flagsCfg)
	b.pins = append(b.pins, pins...)
	return b
}

// withJSON loads the JSON file named by the last source that set
// JSONFilePath and places it before the flags, so command-line flags still
// win. Nothing happens when no source set a path.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	at := len(b.configs)
	if b.flagsAt >= 0 {
		at = b.flagsAt
		b.flagsAt++
	}
	b.configs = slices.Insert(b.configs, at, jsonCfg)
	return b
}
