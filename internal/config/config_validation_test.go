// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{name: "valid", cfg: StructuredConfig{Key: "region", Profile: "base", Output: Output{LogLevel: "debug"}}},
		{name: "nested key", cfg: StructuredConfig{Key: "s3.max_concurrent_requests"}},
		{name: "empty key", cfg: StructuredConfig{}, wantErr: ErrInvalidKey},
		{name: "key with space", cfg: StructuredConfig{Key: "my key"}, wantErr: ErrInvalidKey},
		{name: "key with delimiter", cfg: StructuredConfig{Key: "a=b"}, wantErr: ErrInvalidKey},
		{name: "profile with space", cfg: StructuredConfig{Key: "region", Profile: "my profile"}, wantErr: ErrInvalidProfile},
		{name: "profile with bracket", cfg: StructuredConfig{Key: "region", Profile: "base]"}, wantErr: ErrInvalidProfile},
		{name: "unknown log level", cfg: StructuredConfig{Key: "region", Output: Output{LogLevel: "loud"}}, wantErr: ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := StructuredConfig{}
	cfg.applyDefaults()
	assert.Equal(t, DefaultKey, cfg.Key)

	cfg = StructuredConfig{Key: "output"}
	cfg.applyDefaults()
	assert.Equal(t, "output", cfg.Key)
}
