// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"github.com/tfctl/brewdiff/internal/intent"
	"github.com/tfctl/brewdiff/internal/set"
	"github.com/tfctl/brewdiff/internal/state"
)

// CategoryDiff holds what would be added to and removed from one category to
// make the installation match intent. Both lists are sorted and never nil.
type CategoryDiff struct {
	Added   []string `json:"added" yaml:"added"`
	Removed []string `json:"removed" yaml:"removed"`
}

// Empty reports whether nothing is added or removed.
func (d CategoryDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// Report is the difference across all categories.
type Report struct {
	Formulae CategoryDiff `json:"formulae" yaml:"formulae"`
	Casks    CategoryDiff `json:"casks" yaml:"casks"`
	Taps     CategoryDiff `json:"taps" yaml:"taps"`
	MasApps  CategoryDiff `json:"mas_apps" yaml:"mas_apps"`
}

// Compute diffs current state against intent.
func Compute(current state.State, in intent.Intent) Report {
	return Report{
		Formulae: packageDiff(current.Formulae, in.Formulae),
		Casks:    packageDiff(current.Casks, in.Casks),
		Taps:     setDiff(current.Taps, in.Taps),
		MasApps:  setDiff(current.MasApps, in.MasApps),
	}
}

// packageDiff compares installed package names, ignoring versions.
func packageDiff(installed set.VersionMap, intended set.NameSet) CategoryDiff {
	return setDiff(installed.Names(), intended)
}

func setDiff(current, intended set.NameSet) CategoryDiff {
	return CategoryDiff{
		Added:   intended.Minus(current).Sorted(),
		Removed: current.Minus(intended).Sorted(),
	}
}

// Categories returns the four category diffs in report order.
func (r Report) Categories() []CategoryDiff {
	return []CategoryDiff{r.Formulae, r.Casks, r.Taps, r.MasApps}
}

// HasChanges reports whether any category has additions or removals.
func (r Report) HasChanges() bool {
	for _, c := range r.Categories() {
		if !c.Empty() {
			return true
		}
	}
	return false
}

// TotalChanges counts every addition and removal in every category.
func (r Report) TotalChanges() int {
	total := 0
	for _, c := range r.Categories() {
		total += len(c.Added) + len(c.Removed)
	}
	return total
}

// Added counts additions across formulae, casks and taps. App Store apps are
// not included.
func (r Report) Added() int {
	return len(r.Formulae.Added) + len(r.Casks.Added) + len(r.Taps.Added)
}

// Removed counts removals across formulae, casks and taps. App Store apps are
// not included.
func (r Report) Removed() int {
	return len(r.Formulae.Removed) + len(r.Casks.Removed) + len(r.Taps.Removed)
}
