// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-profile-resolver/internal/config"
	"github.com/MKhiriev/go-profile-resolver/internal/loader"
	"github.com/MKhiriev/go-profile-resolver/internal/logger"
	"github.com/MKhiriev/go-profile-resolver/internal/profile"
	"github.com/MKhiriev/go-profile-resolver/internal/provider"
	"github.com/MKhiriev/go-profile-resolver/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
)

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// App resolves a single setting and prints it.
type App struct {
	cfg         *config.StructuredConfig
	providerCfg provider.ProviderConfig
	styles      styles
	out         io.Writer
	errOut      io.Writer
	log         *logger.Logger
}

// NewApp builds an App. Explicit profile file locations from cfg replace the
// corresponding variables in the environment of providerCfg. The resolved
// value goes to out, everything meant for humans only goes to errOut.
func NewApp(cfg *config.StructuredConfig, providerCfg provider.ProviderConfig, out, errOut io.Writer, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	log = logger.OrNop(log)
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	env := providerCfg.Env()
	if cfg.Files.Config != "" {
		env = env.With(loader.ConfigFileVar, cfg.Files.Config)
	}
	if cfg.Files.Credentials != "" {
		env = env.With(loader.CredentialsFileVar, cfg.Files.Credentials)
	}

	return &App{
		cfg:         cfg,
		providerCfg: providerCfg.WithEnv(env).WithLogger(log),
		styles:      newStyles(lipgloss.NewRenderer(errOut)),
		out:         out,
		errOut:      errOut,
		log:         log,
	}, nil
}

// Run resolves the configured key. It returns [ErrNotFound] when no provider
// knows the key; the caller decides the exit status.
func (a *App) Run(ctx context.Context) error {
	var t trace
	if a.cfg.Output.Explain {
		t = a.explain(ctx)
		fmt.Fprintln(a.errOut, a.styles.renderExplain(t))
	} else {
		t = a.resolve(ctx)
	}

	a.log.Debug().
		Str("key", t.key).
		Bool("found", t.found).
		Msg(MsgResolved)

	if !t.found {
		fmt.Fprintln(a.errOut, MsgNotFound)
		return ErrNotFound
	}

	fmt.Fprintln(a.out, t.value)

	if a.cfg.Output.Copy {
		if err := clipboardWrite(t.value); err != nil {
			a.log.Warn().Err(err).Msg(MsgCopyFailed)
		} else {
			a.log.Info().Msg(MsgCopied)
		}
	}

	return nil
}

// PrintBuildInfo writes the version banner to the human-facing writer.
func (a *App) PrintBuildInfo(info models.BuildInfo) {
	fmt.Fprintln(a.errOut, a.styles.renderBuildInfo(info))
}

// resolve uses the region provider chain for the region and the profile file
// provider for every other key.
func (a *App) resolve(ctx context.Context) trace {
	t := trace{key: a.cfg.Key, override: a.cfg.ProfileOverride()}

	if t.key == profile.RegionKey {
		region, ok := provider.DefaultRegionChain(a.providerCfg, t.override).Region(ctx)
		t.value, t.found = region.String(), ok
		return t
	}

	t.value, t.found = a.profileProvider(t.override).Setting(ctx, t.key)
	return t
}

// explain follows the same order as resolve but keeps the details of every
// step. The profile chain is always reported, even when the environment
// already supplied the region.
func (a *App) explain(ctx context.Context) trace {
	t := trace{key: a.cfg.Key, override: a.cfg.ProfileOverride()}

	if t.key == profile.RegionKey {
		if region, name, ok := provider.NewEnvRegionProvider(a.providerCfg).Lookup(); ok {
			t.value, t.found, t.envVar = region.String(), true, name
		}
	}

	r, err := a.profileProvider(t.override).Explain(ctx, t.key)
	if err != nil {
		a.log.Warn().Err(err).Msg(MsgFailedToLoadProfiles)
		t.loadErr = err
		return t
	}

	t.resolution = &r
	if !t.found {
		t.value, t.found = r.Value, r.Found()
	}
	return t
}

func (a *App) profileProvider(override *string) *provider.ProfileFileProvider {
	b := provider.NewProfileFileBuilder().Configure(a.providerCfg)
	if override != nil {
		b.ProfileName(*override)
	}
	return b.Build()
}
