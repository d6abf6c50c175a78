// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package intent

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ManifestParser turns manifest text into an Intent.
type ManifestParser interface {
	Parse(r io.Reader) (Intent, error)
}

// BrewfileParser understands the subset of the Brewfile DSL that nix-darwin
// generates: tap, brew, cask and mas lines. Anything else is ignored.
type BrewfileParser struct {
	AppStore bool
}

var _ ManifestParser = BrewfileParser{}

// Parse reads the Brewfile line by line.
func (p BrewfileParser) Parse(r io.Reader) (Intent, error) {
	in := Empty()

	br := bufio.NewReader(r)
	for {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return Intent{}, err
		}
		if raw == "" && err != nil {
			break
		}

		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case strings.HasPrefix(line, `brew "`):
			if v, ok := ExtractQuoted(line); ok {
				in.Formulae.Add(v)
			}
		case strings.HasPrefix(line, `cask "`):
			if v, ok := ExtractQuoted(line); ok {
				in.Casks.Add(v)
			}
		case strings.HasPrefix(line, `tap "`):
			if v, ok := ExtractQuoted(line); ok {
				in.Taps.Add(v)
			}
		case strings.HasPrefix(line, `mas "`):
			if !p.AppStore {
				continue
			}
			if name, id, ok := parseMas(line); ok {
				in.MasApps.Add(fmt.Sprintf("%s (%s)", name, id))
			}
		}
	}

	return in, nil
}

// ExtractQuoted returns the text between the first double quote and the next
// one.
func ExtractQuoted(line string) (string, bool) {
	start := strings.Index(line, `"`)
	if start == -1 {
		return "", false
	}
	end := strings.Index(line[start+1:], `"`)
	if end == -1 {
		return "", false
	}
	return line[start+1 : start+1+end], true
}

// parseMas parses `mas "App Name", id: 1234567890`.
func parseMas(line string) (name, id string, ok bool) {
	name, ok = ExtractQuoted(line)
	if !ok {
		return "", "", false
	}
	_, rest, found := strings.Cut(line, "id:")
	if !found {
		return "", "", false
	}
	return name, strings.TrimSpace(rest), true
}
