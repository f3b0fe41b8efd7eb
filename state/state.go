package state

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/conelab/builder"
	"github.com/katalvlaran/conelab/core"
	"github.com/katalvlaran/conelab/dfs"
	"github.com/katalvlaran/conelab/history"
	"github.com/katalvlaran/conelab/matrix"
)

// Option configures a State.
type Option func(*config)

type config struct {
	logger      *slog.Logger
	builderOpts []builder.BuilderOption
	cacheOpts   []matrix.CacheOption
}

// WithLogger routes engine logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("state: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithBuilderOptions forwards options to builder.Build in New.
func WithBuilderOptions(opts ...builder.BuilderOption) Option {
	return func(c *config) { c.builderOpts = append(c.builderOpts, opts...) }
}

// WithCacheOptions forwards options to matrix.NewCache.
func WithCacheOptions(opts ...matrix.CacheOption) Option {
	return func(c *config) { c.cacheOpts = append(c.cacheOpts, opts...) }
}

// State owns a graph and everything derived from it.
type State struct {
	g    *core.Graph
	meta *Metadata
	ini  []core.NodeIndex
	fin  []core.NodeIndex

	// Derived from the active graph; nil/false after any tombstone change.
	cycles      []dfs.Cycle
	cyclesValid bool
	cache       *matrix.Cache
	cacheValid  bool

	tree      *history.Tree
	log       *slog.Logger
	cacheOpts []matrix.CacheOption
}

// New generates a graph from settings and wraps it. When
// settings.DiamondFilter is set the filter runs once before New returns.
func New(ctx context.Context, settings builder.Settings, opts ...Option) (*State, error) {
	cfg := newConfig(opts...)
	bopts := append([]builder.BuilderOption{builder.WithLogger(cfg.logger)}, cfg.builderOpts...)
	res, err := builder.Build(ctx, settings, bopts...)
	if err != nil {
		return nil, fmt.Errorf("state.New: %w", err)
	}

	s := fromGraph(res.Graph, cfg)
	if settings.DiamondFilter {
		s.DiamondFilter()
	}

	return s, nil
}

// FromGraph wraps an existing graph. Ini and fin roles are read from the
// IniPrefix and FinPrefix name markers. The State takes ownership of g.
func FromGraph(g *core.Graph, opts ...Option) (*State, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return fromGraph(g, newConfig(opts...)), nil
}

func newConfig(opts ...Option) config {
	cfg := config{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func fromGraph(g *core.Graph, cfg config) *State {
	s := &State{
		g:         g,
		tree:      history.NewTree(),
		log:       cfg.logger,
		cacheOpts: cfg.cacheOpts,
	}
	s.reindex()
	s.log.Debug("state: ready",
		slog.Int("nodes", g.NodeCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("ini", len(s.ini)),
		slog.Int("fin", len(s.fin)),
	)

	return s
}

// reindex rebuilds the metadata and rescans ini/fin by name prefix.
func (s *State) reindex() {
	s.meta = NewMetadata(s.g)
	s.ini, s.fin = nil, nil
	for i, n := range s.g.Nodes() {
		switch {
		case strings.HasPrefix(n.Name, builder.IniPrefix):
			s.ini = append(s.ini, core.NodeIndex(i))
		case strings.HasPrefix(n.Name, builder.FinPrefix):
			s.fin = append(s.fin, core.NodeIndex(i))
		}
	}
	s.invalidate()
}

// invalidate drops everything derived from the active graph.
func (s *State) invalidate() {
	s.cycles, s.cyclesValid = nil, false
	s.cacheValid = false
}

// Graph returns the underlying graph. Callers must not mutate it.
func (s *State) Graph() *core.Graph { return s.g }

// Metadata returns the identity index of the current graph.
func (s *State) Metadata() *Metadata { return s.meta }

// Ini returns the ini nodes in ascending index order.
func (s *State) Ini() []core.NodeIndex { return append([]core.NodeIndex(nil), s.ini...) }

// Fin returns the fin nodes in ascending index order.
func (s *State) Fin() []core.NodeIndex { return append([]core.NodeIndex(nil), s.fin...) }
