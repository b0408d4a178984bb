// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"context"

	"github.com/MKhiriev/go-profile-resolver/internal/logger"
	"github.com/MKhiriev/go-profile-resolver/internal/osshim"
	"github.com/MKhiriev/go-profile-resolver/internal/profile"
	"github.com/MKhiriev/go-profile-resolver/internal/utils"
	"github.com/MKhiriev/go-profile-resolver/models"
	"github.com/spf13/afero"
)

// ProfileFileBuilder configures a [ProfileFileProvider].
//
// The zero value is ready to use and builds a provider backed by the real
// file system and environment.
type ProfileFileBuilder struct {
	config      *ProviderConfig
	profileName *string
}

func NewProfileFileBuilder() *ProfileFileBuilder {
	return &ProfileFileBuilder{}
}

// Configure sets the shared provider configuration.
func (b *ProfileFileBuilder) Configure(cfg ProviderConfig) *ProfileFileBuilder {
	b.config = &cfg
	return b
}

// ProfileName overrides the profile selected through AWS_PROFILE. An empty
// name is kept as an override and usually resolves to nothing.
func (b *ProfileFileBuilder) ProfileName(name string) *ProfileFileBuilder {
	b.profileName = &name
	return b
}

// Build returns the configured provider. The builder may be reused.
func (b *ProfileFileBuilder) Build() *ProfileFileProvider {
	cfg := NewProviderConfig()
	if b.config != nil {
		cfg = *b.config
	}

	var override *string
	if b.profileName != nil {
		name := *b.profileName
		override = &name
	}

	return &ProfileFileProvider{
		fs:       cfg.Fs(),
		env:      cfg.Env(),
		logger:   cfg.Logger(),
		loader:   cfg.Loader(),
		ids:      utils.NewUUIDGenerator(),
		override: override,
	}
}

// ProfileFileProvider resolves settings from the shared config and
// credentials files.
//
// Nothing is cached: each call loads the files again, so edits made between
// calls are observed. A ProfileFileProvider is safe for concurrent use.
type ProfileFileProvider struct {
	fs       afero.Fs
	env      osshim.Env
	logger   *logger.Logger
	loader   Loader
	ids      *utils.UUIDGenerator
	override *string
}

// NewProfileFileProvider returns a provider with the default configuration.
func NewProfileFileProvider() *ProfileFileProvider {
	return NewProfileFileBuilder().Build()
}

// Region resolves the "region" setting.
func (p *ProfileFileProvider) Region(ctx context.Context) (models.Region, bool) {
	value, ok := p.Setting(ctx, profile.RegionKey)
	if !ok {
		return models.Region{}, false
	}
	return models.NewRegion(value), true
}

// Setting resolves key through the source_profile chain.
//
// Failures to load the profile files are logged and reported as "not found".
func (p *ProfileFileProvider) Setting(ctx context.Context, key string) (string, bool) {
	log := p.logger.With().
		Str("resolution_id", p.ids.Generate()).
		Str("key", key).
		Logger()

	set, err := p.loader.Load(ctx, p.fs, p.env)
	if err != nil {
		log.Warn().Err(err).Msg("failed to parse profile")
		return "", false
	}

	r := profile.Explain(set, p.override, key)
	log.Debug().
		Str("outcome", r.Outcome.String()).
		Str("profile", r.Profile).
		Strs("visited", r.Visited).
		Msg("profile setting resolved")

	return r.Value, r.Found()
}

// Explain loads the profile files and reports how key resolves. Unlike
// [ProfileFileProvider.Setting] it returns loader errors to the caller.
func (p *ProfileFileProvider) Explain(ctx context.Context, key string) (profile.Resolution, error) {
	set, err := p.loader.Load(ctx, p.fs, p.env)
	if err != nil {
		return profile.Resolution{Key: key, Outcome: profile.OutcomeUnknown}, err
	}
	return profile.Explain(set, p.override, key), nil
}
