// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"github.com/MKhiriev/go-profile-resolver/internal/loader"
	"github.com/MKhiriev/go-profile-resolver/internal/logger"
	"github.com/MKhiriev/go-profile-resolver/internal/osshim"
	"github.com/spf13/afero"
)

// ProviderConfig carries the collaborators shared by all providers.
//
// A ProviderConfig is a value; every With method returns a modified copy and
// leaves the receiver untouched.
type ProviderConfig struct {
	fs     afero.Fs
	env    osshim.Env
	logger *logger.Logger
	loader Loader
}

// NewProviderConfig returns a configuration backed by the real file system
// and process environment. Logging is disabled until WithLogger is called.
func NewProviderConfig() ProviderConfig {
	return ProviderConfig{
		fs:     osshim.RealFs(),
		env:    osshim.RealEnv(),
		logger: logger.Nop(),
		loader: loader.New(nil),
	}
}

// EmptyProviderConfig returns a configuration with an empty in-memory file
// system and an empty environment.
func EmptyProviderConfig() ProviderConfig {
	return ProviderConfig{
		fs:     afero.NewMemMapFs(),
		env:    osshim.Env{},
		logger: logger.Nop(),
		loader: loader.New(nil),
	}
}

func (c ProviderConfig) WithFs(fs afero.Fs) ProviderConfig {
	c.fs = fs
	return c
}

func (c ProviderConfig) WithEnv(env osshim.Env) ProviderConfig {
	c.env = env
	return c
}

// WithLogger sets the logger used by providers and by the default loader.
// A nil logger disables logging.
func (c ProviderConfig) WithLogger(log *logger.Logger) ProviderConfig {
	c.logger = logger.OrNop(log)
	if _, ok := c.loader.(*loader.ProfileLoader); ok {
		c.loader = loader.New(c.logger)
	}
	return c
}

// WithLoader replaces the loader. A nil loader restores the default one.
func (c ProviderConfig) WithLoader(l Loader) ProviderConfig {
	if l == nil {
		l = loader.New(c.logger)
	}
	c.loader = l
	return c
}

func (c ProviderConfig) Fs() afero.Fs {
	if c.fs == nil {
		return afero.NewMemMapFs()
	}
	return c.fs
}

func (c ProviderConfig) Env() osshim.Env {
	return c.env
}

func (c ProviderConfig) Logger() *logger.Logger {
	return logger.OrNop(c.logger)
}

func (c ProviderConfig) Loader() Loader {
	if c.loader == nil {
		return loader.New(c.Logger())
	}
	return c.loader
}
