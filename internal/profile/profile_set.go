// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package profile

import (
	"maps"
	"slices"
)

// ProfileSet is a collection of uniquely named profiles plus the name of the
// profile selected by default.
//
// A ProfileSet is built once and never mutated afterwards, so it may be shared
// between goroutines. Cycles between source_profile references are valid data
// and are not rejected here; [Resolve] copes with them at read time.
//
// A nil *ProfileSet behaves like an empty set.
type ProfileSet struct {
	profiles map[string]Profile
	selected string
}

// NewProfileSet builds a [ProfileSet] from profiles. When two profiles share a
// name the later one replaces the earlier one. An empty selected name falls
// back to [DefaultProfileName].
func NewProfileSet(selected string, profiles ...Profile) *ProfileSet {
	if selected == "" {
		selected = DefaultProfileName
	}

	set := &ProfileSet{
		profiles: make(map[string]Profile, len(profiles)),
		selected: selected,
	}
	for _, p := range profiles {
		set.profiles[p.Name()] = p
	}

	return set
}

// IsEmpty reports whether the set contains no profiles.
func (s *ProfileSet) IsEmpty() bool {
	return s == nil || len(s.profiles) == 0
}

// Len returns the number of profiles in the set.
func (s *ProfileSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.profiles)
}

// GetProfile looks up a profile by name. Absence is a normal outcome and is
// reported through the boolean result.
func (s *ProfileSet) GetProfile(name string) (Profile, bool) {
	if s == nil {
		return Profile{}, false
	}
	p, ok := s.profiles[name]
	return p, ok
}

// SelectedProfile returns the name of the profile selected by default.
func (s *ProfileSet) SelectedProfile() string {
	if s == nil {
		return DefaultProfileName
	}
	return s.selected
}

// Names returns all profile names in lexical order.
func (s *ProfileSet) Names() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.profiles))
}
