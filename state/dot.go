package state

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/conelab/core"
)

// DOT rendering defaults.
const (
	DefaultPenScale    = 4.0
	DefaultMinPenWidth = 0.5
)

// Colours used for element state.
const (
	ColorDefault  = "black"
	ColorDeleted  = "gray"
	ColorSelected = "red"
)

// DOTOption configures DOT rendering.
type DOTOption func(*dotConfig)

type dotConfig struct {
	name        string
	hideDeleted bool
	scale       float64
	minWidth    float64
}

// WithHideDeleted omits soft-deleted nodes and inactive edges instead of
// drawing them gray.
func WithHideDeleted() DOTOption {
	return func(c *dotConfig) { c.hideDeleted = true }
}

// WithPenWidth sets the width of the heaviest edge and the floor applied to
// lighter ones. Panics unless 0 < minWidth <= scale.
func WithPenWidth(scale, minWidth float64) DOTOption {
	if minWidth <= 0 || scale < minWidth {
		panic(fmt.Sprintf("state: WithPenWidth(%g, %g)", scale, minWidth))
	}
	return func(c *dotConfig) { c.scale, c.minWidth = scale, minWidth }
}

// WithGraphName sets the DOT graph identifier.
func WithGraphName(name string) DOTOption {
	return func(c *dotConfig) { c.name = name }
}

// DOT renders the graph in Graphviz syntax. Nodes are identified by index
// and labelled by name; edges are labelled by weight and drawn with
// penwidth = max(weight/maxWeight*scale, minWidth), where maxWeight is taken
// over active edges.
func (s *State) DOT(opts ...DOTOption) string {
	var sb strings.Builder
	_ = s.WriteDOT(&sb, opts...)

	return sb.String()
}

// WriteDOT streams DOT to w.
func (s *State) WriteDOT(w io.Writer, opts ...DOTOption) error {
	cfg := dotConfig{scale: DefaultPenScale, minWidth: DefaultMinPenWidth}
	for _, opt := range opts {
		opt(&cfg)
	}

	var sb strings.Builder
	sb.WriteString("digraph ")
	if cfg.name != "" {
		sb.WriteString(strconv.Quote(cfg.name))
		sb.WriteByte(' ')
	}
	sb.WriteString("{\n")

	for i, n := range s.g.Nodes() {
		if cfg.hideDeleted && n.Deleted {
			continue
		}
		c := color(n.Deleted, n.Selected)
		fmt.Fprintf(&sb, "    %d [ label = %s color = %s fontcolor = %s ]\n",
			i, strconv.Quote(n.Name), c, c)
	}

	maxW := s.g.MaxWeight()
	for i, e := range s.g.Edges() {
		active := s.g.EdgeActive(core.EdgeIndex(i))
		if cfg.hideDeleted && !active {
			continue
		}
		c := color(!active, e.Selected)
		fmt.Fprintf(&sb, "    %d -> %d [ label = %s penwidth = %s color = %s fontcolor = %s ]\n",
			e.From, e.To,
			strconv.Quote(strconv.FormatFloat(e.Weight, 'f', 2, 64)),
			strconv.FormatFloat(penWidth(e.Weight, maxW, cfg), 'f', 2, 64),
			c, c)
	}
	sb.WriteString("}\n")

	_, err := io.WriteString(w, sb.String())

	return err
}

func penWidth(w, maxW float64, cfg dotConfig) float64 {
	if maxW <= 0 {
		return cfg.minWidth
	}
	return max(w/maxW*cfg.scale, cfg.minWidth)
}

func color(deleted, selected bool) string {
	switch {
	case deleted:
		return ColorDeleted
	case selected:
		return ColorSelected
	default:
		return ColorDefault
	}
}
