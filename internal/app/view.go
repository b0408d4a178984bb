// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-profile-resolver/internal/profile"
	"github.com/MKhiriev/go-profile-resolver/models"
)

const chainSeparator = " -> "

// trace describes where a value came from.
type trace struct {
	key        string
	value      string
	found      bool
	envVar     string
	override   *string
	resolution *profile.Resolution
	loadErr    error
}

func (s styles) renderExplain(t trace) string {
	var b strings.Builder

	row := func(label, value string) {
		b.WriteString(s.label.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("key", t.key)

	if t.envVar != "" {
		row("source", "environment variable "+t.envVar)
	}

	if r := t.resolution; r != nil {
		start := "selected profile"
		if t.override != nil {
			start = fmt.Sprintf("override %q", *t.override)
		}
		row("start", start)
		row("chain", valueOrNA(strings.Join(r.Visited, chainSeparator)))
		row("outcome", r.Outcome.String())
		if r.Found() && t.envVar == "" {
			row("profile", r.Profile)
		}
	}

	if t.loadErr != nil {
		row("error", t.loadErr.Error())
	}

	if t.found {
		row("value", s.value.Render(t.value))
	} else {
		row("value", s.missing.Render(MsgNotFound))
	}

	body := strings.TrimSuffix(b.String(), "\n")
	return s.title.Render("Resolution of "+t.key) + "\n" + s.box.Render(body)
}

func (s styles) renderBuildInfo(info models.BuildInfo) string {
	lines := make([]string, 0, 3)
	for _, f := range info.Fields() {
		lines = append(lines, s.help.Render(f.Label+": "+f.Value))
	}
	return strings.Join(lines, "\n")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return models.NotAvailable
	}
	return v
}
