// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/tfctl/brewdiff/internal/differ"
	"github.com/tfctl/brewdiff/internal/intent"
	"github.com/tfctl/brewdiff/internal/set"
	"github.com/tfctl/brewdiff/internal/state"
)

// reportDoc is the serialized form of a report.
type reportDoc struct {
	differ.Report `yaml:",inline"`
	TotalChanges  int `json:"total_changes" yaml:"total_changes"`
}

// StateDoc is the serialized form of installed state.
type StateDoc struct {
	Formulae set.VersionMap `json:"formulae" yaml:"formulae"`
	Casks    set.VersionMap `json:"casks" yaml:"casks"`
	Taps     []string       `json:"taps" yaml:"taps"`
	MasApps  []string       `json:"mas_apps" yaml:"mas_apps"`
}

// IntentDoc is the serialized form of declared intent.
type IntentDoc struct {
	Brewfile string   `json:"brewfile" yaml:"brewfile"`
	Formulae []string `json:"formulae" yaml:"formulae"`
	Casks    []string `json:"casks" yaml:"casks"`
	Taps     []string `json:"taps" yaml:"taps"`
	MasApps  []string `json:"mas_apps" yaml:"mas_apps"`
}

// NewStateDoc converts st for serialization.
func NewStateDoc(st state.State) StateDoc {
	doc := StateDoc{
		Formulae: st.Formulae,
		Casks:    st.Casks,
		Taps:     st.Taps.Sorted(),
		MasApps:  st.MasApps.Sorted(),
	}
	if doc.Formulae == nil {
		doc.Formulae = set.VersionMap{}
	}
	if doc.Casks == nil {
		doc.Casks = set.VersionMap{}
	}
	return doc
}

// NewIntentDoc converts in, read from brewfile, for serialization.
func NewIntentDoc(brewfile string, in intent.Intent) IntentDoc {
	return IntentDoc{
		Brewfile: brewfile,
		Formulae: in.Formulae.Sorted(),
		Casks:    in.Casks.Sorted(),
		Taps:     in.Taps.Sorted(),
		MasApps:  in.MasApps.Sorted(),
	}
}

// WriteJSON writes report as a single JSON document.
func WriteJSON(w io.Writer, report differ.Report) error {
	return Emit(w, "json", newReportDoc(report))
}

// WriteYAML writes report as a YAML document.
func WriteYAML(w io.Writer, report differ.Report) error {
	return Emit(w, "yaml", newReportDoc(report))
}

// Emit marshals v as json or yaml and writes it to w.
func Emit(w io.Writer, format string, v any) error {
	var (
		out []byte
		err error
	)

	switch format {
	case "json":
		out, err = json.Marshal(v)
		out = append(out, '\n')
	case "yaml":
		out, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", format, err)
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

func newReportDoc(report differ.Report) reportDoc {
	return reportDoc{
		Report: differ.Report{
			Formulae: normalize(report.Formulae),
			Casks:    normalize(report.Casks),
			Taps:     normalize(report.Taps),
			MasApps:  normalize(report.MasApps),
		},
		TotalChanges: report.TotalChanges(),
	}
}

// normalize replaces nil lists so they serialize as [] rather than null.
func normalize(d differ.CategoryDiff) differ.CategoryDiff {
	if d.Added == nil {
		d.Added = []string{}
	}
	if d.Removed == nil {
		d.Removed = []string{}
	}
	return d
}
