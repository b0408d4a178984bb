// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"testing"

	"github.com/MKhiriev/go-profile-resolver/internal/loader"
	"github.com/MKhiriev/go-profile-resolver/internal/logger"
	"github.com/MKhiriev/go-profile-resolver/internal/mock"
	"github.com/MKhiriev/go-profile-resolver/internal/osshim"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestProviderConfig_WithReturnsCopies(t *testing.T) {
	base := EmptyProviderConfig()
	env := osshim.EnvFromMap(map[string]string{"AWS_PROFILE": "base"})
	fs := afero.NewMemMapFs()

	modified := base.WithEnv(env).WithFs(fs)

	_, ok := base.Env().Get("AWS_PROFILE")
	assert.False(t, ok)
	assert.NotSame(t, fs, base.Fs())

	v, ok := modified.Env().Get("AWS_PROFILE")
	assert.True(t, ok)
	assert.Equal(t, "base", v)
	assert.Same(t, fs, modified.Fs())
}

func TestProviderConfig_WithLoader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mock.NewMockLoader(ctrl)

	cfg := EmptyProviderConfig().WithLoader(mockLoader)
	assert.Same(t, mockLoader, cfg.Loader())

	// a custom loader survives a logger change
	cfg = cfg.WithLogger(logger.Nop())
	assert.Same(t, mockLoader, cfg.Loader())

	cfg = cfg.WithLoader(nil)
	assert.IsType(t, &loader.ProfileLoader{}, cfg.Loader())
}

func TestProviderConfig_ZeroValue(t *testing.T) {
	var cfg ProviderConfig

	assert.NotNil(t, cfg.Fs())
	assert.NotNil(t, cfg.Logger())
	assert.NotNil(t, cfg.Loader())
	assert.Empty(t, cfg.Env().Map())
}
