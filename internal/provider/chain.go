// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"context"
	"reflect"
	"slices"

	"github.com/MKhiriev/go-profile-resolver/models"
)

// RegionProviderChain asks its providers in order and returns the first
// region found.
type RegionProviderChain struct {
	providers []RegionProvider
}

// NewRegionProviderChain builds a chain from providers. Nil providers,
// including nil pointers wrapped in the interface, are ignored.
func NewRegionProviderChain(providers ...RegionProvider) *RegionProviderChain {
	c := &RegionProviderChain{}
	for _, p := range providers {
		if !isNilProvider(p) {
			c.providers = append(c.providers, p)
		}
	}
	return c
}

func isNilProvider(p RegionProvider) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// OrElse returns a new chain that falls back to p after the receiver's
// providers.
func (c *RegionProviderChain) OrElse(p RegionProvider) *RegionProviderChain {
	return NewRegionProviderChain(append(slices.Clone(c.providers), p)...)
}

// Len returns the number of providers in the chain.
func (c *RegionProviderChain) Len() int {
	return len(c.providers)
}

// Region returns the first region found. The chain stops early when ctx is
// done.
func (c *RegionProviderChain) Region(ctx context.Context) (models.Region, bool) {
	for _, p := range c.providers {
		if ctx.Err() != nil {
			return models.Region{}, false
		}
		if region, ok := p.Region(ctx); ok {
			return region, true
		}
	}
	return models.Region{}, false
}

// DefaultRegionChain returns the environment provider followed by a profile
// file provider. override, when non-nil, replaces the selected profile.
func DefaultRegionChain(cfg ProviderConfig, override *string) *RegionProviderChain {
	b := NewProfileFileBuilder().Configure(cfg)
	if override != nil {
		b.ProfileName(*override)
	}
	return NewRegionProviderChain(NewEnvRegionProvider(cfg), b.Build())
}
