// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Region is the name of a cloud region (e.g. "us-east-1") resolved from
// configuration.
//
// The zero value represents "no region". Providers report absence through
// their boolean result rather than through a zero Region, so callers should
// always check the flag first.
type Region struct {
	name string
}

// NewRegion constructs a [Region] from its name.
func NewRegion(name string) Region {
	return Region{name: name}
}

// String returns the region name.
func (r Region) String() string {
	return r.name
}

// IsZero reports whether the region has no name.
func (r Region) IsZero() bool {
	return r.name == ""
}
