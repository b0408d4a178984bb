// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "github.com/charmbracelet/lipgloss"

type styles struct {
	box     lipgloss.Style
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	missing lipgloss.Style
	help    lipgloss.Style
}

// newStyles binds the styles to r so that colors follow the capabilities of
// the writer r renders for.
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		box:     r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		title:   r.NewStyle().Bold(true),
		label:   r.NewStyle().Faint(true).Width(10),
		value:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		missing: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		help:    r.NewStyle().Faint(true),
	}
}
