// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"dario.cat/mergo"
	"github.com/MKhiriev/go-profile-resolver/internal/logger"
	"github.com/MKhiriev/go-profile-resolver/internal/osshim"
	"github.com/MKhiriev/go-profile-resolver/internal/profile"
	"github.com/spf13/afero"
)

// ProfileLoader reads profile files through an injected file system.
//
// A ProfileLoader holds no per-call state and may be used concurrently; every
// call to Load reads the files again.
type ProfileLoader struct {
	logger *logger.Logger
}

// New constructs a [ProfileLoader]. A nil logger discards diagnostics.
func New(log *logger.Logger) *ProfileLoader {
	return &ProfileLoader{logger: logger.OrNop(log)}
}

// Load reads the configuration and credentials files located through env and
// returns the resulting profile set.
//
// ctx is checked before each file is read; a cancelled context aborts the
// load with ctx.Err().
func (l *ProfileLoader) Load(ctx context.Context, fs afero.Fs, env osshim.Env) (*profile.ProfileSet, error) {
	cfg, err := ParseEnv(env)
	if err != nil {
		return nil, err
	}

	fromConfig, err := l.readFile(ctx, fs, cfg.ConfigFile, configFile)
	if err != nil {
		return nil, err
	}

	fromCredentials, err := l.readFile(ctx, fs, cfg.CredentialsFile, credentialsFile)
	if err != nil {
		return nil, err
	}

	merged, err := mergeProfiles(fromConfig, fromCredentials)
	if err != nil {
		return nil, err
	}

	profiles := make([]profile.Profile, 0, len(merged))
	for _, name := range slices.Sorted(maps.Keys(merged)) {
		profiles = append(profiles, profile.NewProfile(name, merged[name]))
	}

	l.logger.Debug().
		Str("selected", cfg.Profile).
		Strs("profiles", slices.Sorted(maps.Keys(merged))).
		Msg("profile files loaded")

	return profile.NewProfileSet(cfg.Profile, profiles...), nil
}

func (l *ProfileLoader) readFile(ctx context.Context, fs afero.Fs, path string, kind fileKind) (rawProfiles, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		l.logger.Debug().Str("file", kind.String()).Str("path", path).Msg("profile file not found")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s file %q: %w", kind, path, err)
	}

	profiles, err := parseFile(data, kind, l.logger)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s file %q: %w", kind, path, err)
	}

	return profiles, nil
}

// mergeProfiles combines both files. Properties from overrides replace those
// from base for the same profile and key.
func mergeProfiles(base, overrides rawProfiles) (rawProfiles, error) {
	merged := make(rawProfiles, len(base)+len(overrides))
	for name, props := range base {
		merged[name] = maps.Clone(props)
	}

	for name, props := range overrides {
		dst, ok := merged[name]
		if !ok {
			dst = make(map[string]string, len(props))
		}
		if err := mergo.Merge(&dst, props, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging profile %q: %w", name, err)
		}
		merged[name] = dst
	}

	return merged, nil
}
