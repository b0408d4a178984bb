// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package profile

import (
	"maps"
	"slices"
)

const (
	// DefaultProfileName is the profile selected when nothing else is chosen.
	DefaultProfileName = "default"

	// SourceProfileKey is the reserved setting naming the profile to inherit
	// unset settings from.
	SourceProfileKey = "source_profile"

	// RegionKey is the setting holding the region name.
	RegionKey = "region"
)

// Profile is a named, immutable set of key/value settings.
type Profile struct {
	name       string
	properties map[string]string
}

// NewProfile constructs a [Profile]. The properties map is copied, so later
// changes to it are not observed by the profile.
func NewProfile(name string, properties map[string]string) Profile {
	return Profile{
		name:       name,
		properties: maps.Clone(properties),
	}
}

// Name returns the profile name.
func (p Profile) Name() string {
	return p.name
}

// Get returns the value stored under key and whether it exists.
func (p Profile) Get(key string) (string, bool) {
	v, ok := p.properties[key]
	return v, ok
}

// SourceProfile returns the value of the source_profile setting, if any.
func (p Profile) SourceProfile() (string, bool) {
	return p.Get(SourceProfileKey)
}

// Keys returns the setting names of the profile in lexical order.
func (p Profile) Keys() []string {
	return slices.Sorted(maps.Keys(p.properties))
}

// Properties returns a copy of all settings of the profile.
func (p Profile) Properties() map[string]string {
	if p.properties == nil {
		return map[string]string{}
	}
	return maps.Clone(p.properties)
}
