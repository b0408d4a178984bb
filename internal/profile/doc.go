// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package profile models named configuration profiles and resolves settings
// across source_profile inheritance chains.
//
// A [Profile] is an immutable bag of string settings. A [ProfileSet] groups
// uniquely named profiles and remembers which one is selected by default.
// [Resolve] walks from a starting profile along source_profile links until a
// profile defines the requested key. The walk tolerates missing profiles,
// self references and arbitrary cycles: every such case yields "not found"
// instead of an error.
//
// Example:
//
//	set := profile.NewProfileSet("default",
//	    profile.NewProfile("default", map[string]string{"source_profile": "base"}),
//	    profile.NewProfile("base", map[string]string{"region": "us-east-1"}),
//	)
//	region, ok := profile.Resolve(set, nil, profile.RegionKey) // "us-east-1", true
package profile
