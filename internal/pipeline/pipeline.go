// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/tfctl/brewdiff/internal/differ"
	"github.com/tfctl/brewdiff/internal/intent"
	"github.com/tfctl/brewdiff/internal/log"
	"github.com/tfctl/brewdiff/internal/output"
	"github.com/tfctl/brewdiff/internal/state"
	"github.com/tfctl/brewdiff/internal/sysquery"
)

// Options configures a Pipeline.
type Options struct {
	// Querier runs external commands. Nil means the real host.
	Querier sysquery.Querier

	// BrewPaths overrides the default brew locations when non-empty.
	BrewPaths []string

	// AppStore includes mas apps in both state and intent.
	AppStore bool

	// Concurrent collects state and extracts intent at the same time.
	Concurrent bool
}

// Pipeline ties a Collector and an Extractor together.
type Pipeline struct {
	collector  *state.Collector
	extractor  *intent.Extractor
	concurrent bool
}

// New returns a Pipeline configured by opts.
func New(opts Options) *Pipeline {
	return &Pipeline{
		collector: &state.Collector{
			Querier:   opts.Querier,
			BrewPaths: opts.BrewPaths,
			AppStore:  opts.AppStore,
		},
		extractor:  &intent.Extractor{AppStore: opts.AppStore},
		concurrent: opts.Concurrent,
	}
}

// CurrentState returns what is installed on this host.
func (p *Pipeline) CurrentState(ctx context.Context) (state.State, error) {
	return p.collector.Detect(ctx)
}

// ExtractIntent returns what the profile declares.
func (p *Pipeline) ExtractIntent(profile string) (intent.Intent, error) {
	return p.extractor.Extract(profile)
}

// Brewfile returns the manifest path referenced by the profile.
func (p *Pipeline) Brewfile(profile string) (string, error) {
	return p.extractor.Brewfile(profile)
}

// Run collects state and intent for profile and returns their difference. The
// first error stops the run.
func (p *Pipeline) Run(ctx context.Context, profile string) (differ.Report, error) {
	var (
		st state.State
		in intent.Intent
	)

	if p.concurrent {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			st, err = p.CurrentState(gctx)
			return
		})
		g.Go(func() (err error) {
			in, err = p.ExtractIntent(profile)
			return
		})
		if err := g.Wait(); err != nil {
			return differ.Report{}, err
		}
	} else {
		var err error
		if st, err = p.CurrentState(ctx); err != nil {
			return differ.Report{}, err
		}
		if in, err = p.ExtractIntent(profile); err != nil {
			return differ.Report{}, err
		}
	}

	report := differ.Compute(st, in)
	log.Debugf("diff for %s: total_changes=%d", profile, report.TotalChanges())

	return report, nil
}

// Handle joins a Run started by Spawn.
type Handle struct {
	done   chan struct{}
	report differ.Report
	err    error
}

// Spawn starts Run on its own goroutine.
func (p *Pipeline) Spawn(ctx context.Context, profile string) *Handle {
	h := &Handle{done: make(chan struct{})}
	go func() {
		defer close(h.done)
		h.report, h.err = p.Run(ctx, profile)
	}()
	return h
}

// Wait blocks until the spawned run finishes. It may be called any number of
// times and always returns the same result.
func (h *Handle) Wait() (differ.Report, error) {
	<-h.done
	return h.report, h.err
}

// WriteDiff renders the grouped diff for profile to w.
func (p *Pipeline) WriteDiff(ctx context.Context, w io.Writer, profile string, r *output.Renderer) (int, error) {
	report, err := p.Run(ctx, profile)
	if err != nil {
		return 0, err
	}
	return r.WriteGrouped(w, report)
}

// WriteDiffBetween renders the block diff of the current host against
// newProfile, headed by both profile names.
func (p *Pipeline) WriteDiffBetween(ctx context.Context, w io.Writer, oldProfile, newProfile string, r *output.Renderer) (int, error) {
	report, err := p.Run(ctx, newProfile)
	if err != nil {
		return 0, err
	}
	n, err := r.WriteBlocks(w, report, &output.Header{Old: oldProfile, New: newProfile})
	if err != nil {
		return n, fmt.Errorf("failed to render diff between %s and %s: %w", oldProfile, newProfile, err)
	}
	return n, nil
}
