// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"context"

	"github.com/MKhiriev/go-profile-resolver/internal/osshim"
	"github.com/MKhiriev/go-profile-resolver/models"
)

const (
	RegionVar        = "AWS_REGION"
	DefaultRegionVar = "AWS_DEFAULT_REGION"
)

// EnvRegionProvider reads the region from AWS_REGION, then from
// AWS_DEFAULT_REGION. Empty variables count as unset.
type EnvRegionProvider struct {
	env osshim.Env
}

func NewEnvRegionProvider(cfg ProviderConfig) *EnvRegionProvider {
	return &EnvRegionProvider{env: cfg.Env()}
}

func (p *EnvRegionProvider) Region(context.Context) (models.Region, bool) {
	region, _, ok := p.Lookup()
	return region, ok
}

// Lookup is like Region but also names the variable the region came from.
func (p *EnvRegionProvider) Lookup() (models.Region, string, bool) {
	for _, name := range []string{RegionVar, DefaultRegionVar} {
		if v, ok := p.env.Get(name); ok && v != "" {
			return models.NewRegion(v), name, true
		}
	}
	return models.Region{}, "", false
}
