// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

//go:generate mockgen -source=interfaces.go -destination=../mock/provider_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-profile-resolver/internal/osshim"
	"github.com/MKhiriev/go-profile-resolver/internal/profile"
	"github.com/MKhiriev/go-profile-resolver/models"
	"github.com/spf13/afero"
)

// Loader builds a profile set from the profile files found through fs and env.
type Loader interface {
	Load(ctx context.Context, fs afero.Fs, env osshim.Env) (*profile.ProfileSet, error)
}

// RegionProvider resolves a region. The boolean is false when the provider
// has no opinion, in which case the region is the zero value.
type RegionProvider interface {
	Region(ctx context.Context) (models.Region, bool)
}
