// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/tfctl/brewdiff/internal/differ"
)

// ErrWrite wraps any failure writing to the output sink.
var ErrWrite = errors.New("failed to write output")

// NoChanges is the single line the grouped layout writes for an empty report.
const NoChanges = "No Homebrew changes detected"

// Header names the two profiles shown above a block layout.
type Header struct {
	Old string
	New string
}

// Renderer writes diff reports.
type Renderer struct {
	// Color enables styling of markers, headers and counts.
	Color bool

	// AppStore adds the App Store section to the grouped layout.
	AppStore bool

	// Palette overrides DefaultPalette when Color is set.
	Palette *Palette

	st *styles
}

type section struct {
	title string
	diff  differ.CategoryDiff
}

// lineWriter counts lines and remembers the first write error so render code
// stays linear.
type lineWriter struct {
	w   io.Writer
	n   int
	err error
}

func (lw *lineWriter) line(s string) {
	if lw.err != nil {
		return
	}
	if _, err := io.WriteString(lw.w, s+"\n"); err != nil {
		lw.err = fmt.Errorf("%w: %w", ErrWrite, err)
		return
	}
	lw.n++
}

func (r *Renderer) styles() styles {
	if r.st == nil {
		p := r.Palette
		if p == nil {
			d := DefaultPalette()
			p = &d
		}
		s := newStyles(*p)
		r.st = &s
	}
	return *r.st
}

func (r *Renderer) paint(style func(styles) lipgloss.Style, s string) string {
	if !r.Color {
		return s
	}
	return style(r.styles()).Render(s)
}

func addedStyle(s styles) lipgloss.Style   { return s.added }
func removedStyle(s styles) lipgloss.Style { return s.removed }
func headerStyle(s styles) lipgloss.Style  { return s.header }
func totalStyle(s styles) lipgloss.Style   { return s.total }

// WriteGrouped writes one section per changed category: formulae, casks,
// taps and, with AppStore, App Store apps. Each header is preceded by an
// empty line that is not counted. It returns the number of lines written.
func (r *Renderer) WriteGrouped(w io.Writer, report differ.Report) (int, error) {
	lw := &lineWriter{w: w}

	if !report.HasChanges() {
		lw.line(NoChanges)
		return lw.n, lw.err
	}

	sections := []section{
		{"📦 Homebrew Formulae:", report.Formulae},
		{"🍺 Homebrew Casks:", report.Casks},
		{"🚰 Homebrew Taps:", report.Taps},
	}
	if r.AppStore {
		sections = append(sections, section{"🍎 App Store Apps:", report.MasApps})
	}

	for _, s := range sections {
		if s.diff.Empty() {
			continue
		}
		lw.line("\n" + r.paint(headerStyle, s.title))
		for _, name := range s.diff.Added {
			lw.line("  " + r.paint(addedStyle, "+") + " " + name)
		}
		for _, name := range s.diff.Removed {
			lw.line("  " + r.paint(removedStyle, "-") + " " + name)
		}
	}

	return lw.n, lw.err
}

// WriteBlocks writes the ADDED/REMOVED block layout. A non-nil header is
// always written first as three lines, even when there are no changes. It
// returns the number of lines written.
func (r *Renderer) WriteBlocks(w io.Writer, report differ.Report, header *Header) (int, error) {
	lw := &lineWriter{w: w}

	if header != nil {
		lw.line("<<< " + header.Old)
		lw.line(">>> " + header.New)
		lw.line("")
	}

	if !report.HasChanges() {
		return lw.n, lw.err
	}

	sections := []section{
		{"Taps:", report.Taps},
		{"Formulae:", report.Formulae},
		{"Casks:", report.Casks},
		{"App Store:", report.MasApps},
	}

	var anyAdded, anyRemoved bool
	for _, s := range sections {
		anyAdded = anyAdded || len(s.diff.Added) > 0
		anyRemoved = anyRemoved || len(s.diff.Removed) > 0
	}

	if anyAdded {
		lw.line(r.paint(headerStyle, "ADDED"))
		for _, s := range sections {
			if len(s.diff.Added) == 0 {
				continue
			}
			lw.line("  " + s.title)
			for _, name := range s.diff.Added {
				lw.line("    " + r.paint(addedStyle, "[A]") + " " + name)
			}
		}
	}

	if anyRemoved {
		if anyAdded {
			lw.line("")
		}
		lw.line(r.paint(headerStyle, "REMOVED"))
		for _, s := range sections {
			if len(s.diff.Removed) == 0 {
				continue
			}
			lw.line("  " + s.title)
			for _, name := range s.diff.Removed {
				lw.line("    " + r.paint(removedStyle, "[R]") + " " + name)
			}
		}
	}

	return lw.n, lw.err
}

// WriteSummary writes a single totals line over formulae, casks and taps.
func (r *Renderer) WriteSummary(w io.Writer, report differ.Report) (int, error) {
	lw := &lineWriter{w: w}
	lw.line(fmt.Sprintf("Total: %s added, %s removed",
		r.paint(addedStyle, strconv.Itoa(report.Added())),
		r.paint(removedStyle, strconv.Itoa(report.Removed()))))
	return lw.n, lw.err
}

// WriteStats writes the per-category breakdown followed by the total of all
// changes. Nothing is written for an empty report.
func (r *Renderer) WriteStats(w io.Writer, report differ.Report) error {
	if !report.HasChanges() {
		return nil
	}

	lw := &lineWriter{w: w}
	lw.line("\nSummary:")

	for _, s := range []section{
		{"Formulae", report.Formulae},
		{"Casks", report.Casks},
		{"Taps", report.Taps},
	} {
		if s.diff.Empty() {
			continue
		}
		lw.line(fmt.Sprintf("  %s: %s added, %s removed", s.title,
			r.paint(addedStyle, strconv.Itoa(len(s.diff.Added))),
			r.paint(removedStyle, strconv.Itoa(len(s.diff.Removed)))))
	}

	lw.line("  Total changes: " + r.paint(totalStyle, strconv.Itoa(report.TotalChanges())))

	return lw.err
}
