// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the resolver command.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables prefixed with RESOLVER_
//  2. JSON config file
//  3. Command-line flags
//
// Zero values never override. The boolean flags -explain and -copy are the
// exception: when given explicitly, even as false, they replace the merged
// value.
//
// The main entry point is [GetStructuredConfig].
package config
