// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package provider exposes the settings stored in shared profile files to
// callers that need a single value, most commonly the region.
//
// A [ProfileFileProvider] reloads the profile files on every call and walks
// the source_profile chain of the selected (or overridden) profile with
// [profile.Resolve]. Providers can be combined in a [RegionProviderChain],
// where the first provider that knows a region wins.
package provider
