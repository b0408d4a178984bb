// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-profile-resolver/internal/app"
	"github.com/MKhiriev/go-profile-resolver/internal/config"
	"github.com/MKhiriev/go-profile-resolver/internal/logger"
	"github.com/MKhiriev/go-profile-resolver/internal/osshim"
	"github.com/MKhiriev/go-profile-resolver/internal/provider"
	"github.com/MKhiriev/go-profile-resolver/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	exitNotFound = 1
	exitUsage    = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	environ := osshim.RealEnv()

	cfg, err := config.GetStructuredConfig(os.Args[1:], environ)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		log, _ := logger.NewCLILogger("resolver", "", os.Stderr)
		log.Error().Err(err).Msg("error getting configs")
		return exitUsage
	}

	log, err := logger.NewCLILogger("resolver", cfg.Output.LogLevel, os.Stderr)
	if err != nil {
		return exitUsage
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	providerCfg := provider.NewProviderConfig().
		WithEnv(environ).
		WithFs(osshim.RealFs())

	resolver, err := app.NewApp(cfg, providerCfg, os.Stdout, os.Stderr, log)
	if err != nil {
		log.Error().Err(err).Msg("init app error")
		return exitUsage
	}

	if cfg.Output.Explain {
		resolver.PrintBuildInfo(models.NewBuildInfo(buildVersion, buildDate, buildCommit))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = resolver.Run(ctx); err != nil {
		if !errors.Is(err, app.ErrNotFound) {
			log.Error().Err(err).Msg("resolver run error")
		}
		return exitNotFound
	}

	return 0
}
