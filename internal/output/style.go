// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"image/color"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"golang.org/x/term"

	"github.com/tfctl/brewdiff/internal/config"
)

// Palette holds the colors used for markers and headers.
type Palette struct {
	Added   color.Color
	Removed color.Color
	Header  color.Color
	Total   color.Color
}

// DefaultPalette returns configured colors, falling back to defaults chosen by
// terminal background so output stays readable on light and dark themes.
func DefaultPalette() Palette {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		if c, err := config.GetString(key); err == nil {
			return lipgloss.Color(c)
		}
		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	return Palette{
		Added:   resolveColor("colors.added", "#008700", "#5fd75f"),
		Removed: resolveColor("colors.removed", "#af0000", "#ff5f5f"),
		Header:  resolveColor("colors.header", "#b08800", "#f6be00"),
		Total:   resolveColor("colors.total", "#875f00", "#ffd75f"),
	}
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

type styles struct {
	added   lipgloss.Style
	removed lipgloss.Style
	header  lipgloss.Style
	total   lipgloss.Style
}

func newStyles(p Palette) styles {
	return styles{
		added:   lipgloss.NewStyle().Foreground(p.Added),
		removed: lipgloss.NewStyle().Foreground(p.Removed),
		header:  lipgloss.NewStyle().Foreground(p.Header).Bold(true),
		total:   lipgloss.NewStyle().Foreground(p.Total),
	}
}
