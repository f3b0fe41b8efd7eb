// SPDX-License-Identifier: MIT
// Package: conelab/builder
//
// build.go - random ini/fin graph generation.
//
// Determinism:
//   - Nodes are added in index order 0..TotalCnt-1.
//   - Frontier nodes are expanded in the order they were targeted.
//   - Every random draw goes through the single configured RNG.

package builder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/conelab/core"
)

const methodBuild = "Build"

// Result is a freshly generated graph with its ini and fin nodes, both in
// draw order.
type Result struct {
	Graph *core.Graph
	Ini   []core.NodeIndex
	Fin   []core.NodeIndex
}

// Build validates s and generates a graph as described in the package
// documentation. ctx is checked between frontier passes.
//
// Errors: ErrInvalidSettings, ErrNeedRandSource, ErrConstructFailed, or the
// context error.
func Build(ctx context.Context, s Settings, opts ...BuilderOption) (res *Result, err error) {
	ctx, span := tracer.Start(ctx, "builder.Build", trace.WithAttributes(
		attribute.Int("total_cnt", s.TotalCnt),
		attribute.Int("ini_cnt", s.IniCnt),
		attribute.Int("fin_cnt", s.FinCnt),
	))
	defer span.End()

	start := time.Now()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			recordBuild(ctx, time.Since(start), 0, 0, false)
			return
		}
		recordBuild(ctx, time.Since(start), res.Graph.NodeCount(), res.Graph.EdgeCount(), true)
	}()

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrNeedRandSource)
	}
	weightFn := cfg.weightFn
	if weightFn == nil {
		weightFn = s.WeightFn()
	}

	b := &build{
		s:        s,
		cfg:      cfg,
		weightFn: weightFn,
		g:        core.NewGraph(cfg.graphOpts...),
		isIni:    make([]bool, s.TotalCnt),
		expanded: make([]bool, s.TotalCnt),
		targeted: make([]bool, s.TotalCnt),
	}
	for i := 0; i < s.TotalCnt; i++ {
		b.g.AddNode(cfg.idFn(i))
	}

	if err := b.pickIni(); err != nil {
		return nil, err
	}
	passes, err := b.grow(ctx)
	if err != nil {
		return nil, err
	}
	if err := b.pickFin(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("edges", b.g.EdgeCount()), attribute.Int("passes", passes))
	cfg.logger.Debug("builder: graph generated",
		slog.Int("nodes", b.g.NodeCount()),
		slog.Int("edges", b.g.EdgeCount()),
		slog.Int("ini", len(b.ini)),
		slog.Int("fin", len(b.fin)),
		slog.Int("passes", passes),
	)

	return &Result{Graph: b.g, Ini: b.ini, Fin: b.fin}, nil
}

// build carries the state of one generation run.
type build struct {
	s        Settings
	cfg      builderConfig
	weightFn WeightFn
	g        *core.Graph

	isIni    []bool
	expanded []bool // already sampled an out-degree
	targeted []bool
	order    []core.NodeIndex // targeted nodes in first-hit order

	ini, fin []core.NodeIndex
}

func (b *build) pickIni() error {
	all := make([]core.NodeIndex, b.s.TotalCnt)
	for i := range all {
		all[i] = core.NodeIndex(i)
	}
	picked, err := b.pickDistinct(all, min(b.s.IniCnt, b.s.TotalCnt))
	if err != nil {
		return fmt.Errorf("%s: ini: %w", methodBuild, err)
	}
	for _, n := range picked {
		b.isIni[n] = true
		if err := b.rename(n, IniPrefix); err != nil {
			return err
		}
	}
	b.ini = picked

	return nil
}

// grow runs frontier passes until one of them expands no node. It returns
// the number of passes that expanded at least one node.
func (b *build) grow(ctx context.Context) (int, error) {
	frontier := b.ini
	passes := 0
	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return passes, fmt.Errorf("%s: %w", methodBuild, err)
		}

		var next []core.NodeIndex
		added := 0
		for _, src := range frontier {
			if b.expanded[src] {
				continue
			}
			b.expanded[src] = true
			added++
			next = b.expand(src, next)
		}
		if added == 0 {
			break
		}
		passes++
		frontier = next
	}

	return passes, nil
}

// expand samples the out-degree of src, adds its edges and appends the
// targets to next.
func (b *build) expand(src core.NodeIndex, next []core.NodeIndex) []core.NodeIndex {
	rng := b.cfg.rng
	lo := 0
	if b.isIni[src] {
		lo = 1
	}
	deg := lo + rng.Intn(b.s.MaxOutDegree-lo)

	for k := 0; k < deg; k++ {
		dst := core.NodeIndex(rng.Intn(b.s.TotalCnt))
		if b.s.NoTwinEdges && b.g.HasEdge(src, dst) {
			continue
		}
		// Both endpoints exist by construction.
		_, _ = b.g.AddEdge(src, dst, b.weightFn(rng))
		if !b.targeted[dst] {
			b.targeted[dst] = true
			b.order = append(b.order, dst)
		}
		next = append(next, dst)
	}

	return next
}

func (b *build) pickFin() error {
	candidates := make([]core.NodeIndex, 0, len(b.order))
	for _, n := range b.order {
		if !b.isIni[n] {
			candidates = append(candidates, n)
		}
	}
	want := min(b.s.FinCnt, len(candidates))
	if want < b.s.FinCnt {
		b.cfg.logger.Warn("builder: fewer fin candidates than requested",
			slog.Int("requested", b.s.FinCnt),
			slog.Int("available", len(candidates)),
		)
	}

	picked, err := b.pickDistinct(candidates, want)
	if err != nil {
		return fmt.Errorf("%s: fin: %w", methodBuild, err)
	}
	for _, n := range picked {
		if err := b.rename(n, FinPrefix); err != nil {
			return err
		}
	}
	b.fin = picked

	return nil
}

// pickDistinct draws k distinct elements of from, retrying on duplicate
// draws. Exhausting the attempt budget returns ErrConstructFailed.
func (b *build) pickDistinct(from []core.NodeIndex, k int) ([]core.NodeIndex, error) {
	if k <= 0 {
		return nil, nil
	}
	seen := make(map[core.NodeIndex]struct{}, k)
	out := make([]core.NodeIndex, 0, k)
	budget := 32*len(from) + 1024
	for attempts := 0; len(out) < k; attempts++ {
		if attempts >= budget {
			return nil, fmt.Errorf("picked %d of %d after %d draws: %w", len(out), k, attempts, ErrConstructFailed)
		}
		n := from[b.cfg.rng.Intn(len(from))]
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}

	return out, nil
}

func (b *build) rename(n core.NodeIndex, prefix string) error {
	node, err := b.g.Node(n)
	if err != nil {
		return fmt.Errorf("%s: %w", methodBuild, err)
	}
	if err := b.g.Rename(n, prefix+node.Name); err != nil {
		return fmt.Errorf("%s: %w", methodBuild, err)
	}

	return nil
}
