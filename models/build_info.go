// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// NotAvailable stands in for build metadata that was not injected at link
// time.
const NotAvailable = "N/A"

// BuildInfo describes the resolver binary. Values come from linker flags and
// are shown in the -explain banner.
type BuildInfo struct {
	version string
	date    string
	commit  string
}

// BuildField is one labelled line of the banner.
type BuildField struct {
	Label string
	Value string
}

// NewBuildInfo trims the given metadata and replaces blanks with
// [NotAvailable].
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

func (b BuildInfo) Version() string { return orNotAvailable(b.version) }
func (b BuildInfo) Date() string    { return orNotAvailable(b.date) }
func (b BuildInfo) Commit() string  { return orNotAvailable(b.commit) }

// Fields returns the banner lines in display order.
func (b BuildInfo) Fields() []BuildField {
	return []BuildField{
		{Label: "Build version", Value: b.Version()},
		{Label: "Build date", Value: b.Date()},
		{Label: "Build commit", Value: b.Commit()},
	}
}

// String returns a one-line summary, e.g. "resolver 1.2.3 (abc123)".
func (b BuildInfo) String() string {
	return fmt.Sprintf("resolver %s (%s)", b.Version(), b.Commit())
}

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return NotAvailable
	}
	return v
}
