package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/conelab/bfs"
	"github.com/katalvlaran/conelab/builder"
	"github.com/katalvlaran/conelab/core"
	"github.com/katalvlaran/conelab/state"
)

type graphOptions struct {
	config      string
	seed        int64
	diamond     bool
	hideDeleted bool
	deleteCone  string
	colorCone   string
	colorCycles bool
	dir         string
	steps       int
	history     string
}

func newGraphCmd(root *rootOptions) *cobra.Command {
	opts := &graphOptions{}
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Generate a graph and print it as DOT",
		Long: `Generate a random ini/fin graph and print it as Graphviz DOT.

Settings come from --config (YAML, see builder.Settings) or the defaults.
Edits are applied in this order: --delete-cone, --color-cone,
--color-cycles. --diamond forces the diamond filter on.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGraph(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.config, "config", "", "YAML settings file")
	f.Int64Var(&opts.seed, "seed", 0, "RNG seed (0 = time based)")
	f.BoolVar(&opts.diamond, "diamond", false, "apply the diamond filter")
	f.BoolVar(&opts.hideDeleted, "hide-deleted", false, "omit soft-deleted elements")
	f.StringVar(&opts.deleteCone, "delete-cone", "", "soft-delete the cone of this node (or ini, fin)")
	f.StringVar(&opts.colorCone, "color-cone", "", "colour the cone of this node (or ini, fin)")
	f.BoolVar(&opts.colorCycles, "color-cycles", false, "colour every cycle reachable from ini")
	f.StringVar(&opts.dir, "dir", "out", "cone direction: out or in")
	f.IntVar(&opts.steps, "steps", bfs.Unlimited, "cone depth, -1 for unlimited")
	f.StringVar(&opts.history, "history", "", "write the edit history as JSON to this file")

	return cmd
}

func runGraph(cmd *cobra.Command, root *rootOptions, opts *graphOptions) error {
	settings := builder.DefaultSettings()
	if opts.config != "" {
		var err error
		if settings, err = builder.LoadSettingsFile(opts.config); err != nil {
			return err
		}
	}
	if opts.diamond {
		settings.DiamondFilter = true
	}
	dir, err := parseDirection(opts.dir)
	if err != nil {
		return err
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	root.logger.Info("conelab: generating", "seed", seed, "total_cnt", settings.TotalCnt)

	st, err := state.New(cmd.Context(), settings,
		state.WithLogger(root.logger),
		state.WithBuilderOptions(builder.WithSeed(seed)),
	)
	if err != nil {
		return err
	}

	if opts.deleteCone != "" {
		for _, name := range coneRoots(st, opts.deleteCone) {
			if err := st.DeleteCone(name, dir, opts.steps); err != nil {
				return err
			}
		}
	}
	if opts.colorCone != "" {
		for _, name := range coneRoots(st, opts.colorCone) {
			if err := st.ColorCone(name, dir, opts.steps); err != nil {
				return err
			}
		}
	}
	if opts.colorCycles {
		cycles, err := st.Cycles()
		if err != nil {
			return err
		}
		for i := range cycles {
			if err := st.ColorCycle(i); err != nil {
				return err
			}
		}
	}

	if opts.history != "" {
		if err := writeHistory(st, opts.history); err != nil {
			return err
		}
	}

	var dotOpts []state.DOTOption
	if opts.hideDeleted {
		dotOpts = append(dotOpts, state.WithHideDeleted())
	}

	return st.WriteDOT(cmd.OutOrStdout(), dotOpts...)
}

// coneRoots expands the role aliases "ini" and "fin" to the names of the
// current role nodes. Any other value is taken as a node name.
func coneRoots(st *state.State, arg string) []string {
	var roles []core.NodeIndex
	switch arg {
	case "ini":
		roles = st.Ini()
	case "fin":
		roles = st.Fin()
	default:
		return []string{arg}
	}

	names := make([]string, 0, len(roles))
	for _, n := range roles {
		if node, err := st.Graph().Node(n); err == nil {
			names = append(names, node.Name)
		}
	}
	return names
}

func writeHistory(st *state.State, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	if err := st.SaveHistory(f); err != nil {
		f.Close()
		return fmt.Errorf("write history: %w", err)
	}
	return f.Close()
}

func parseDirection(s string) (core.Direction, error) {
	switch s {
	case "out", "outgoing":
		return core.Outgoing, nil
	case "in", "incoming":
		return core.Incoming, nil
	default:
		return 0, fmt.Errorf("invalid --dir %q: want out or in", s)
	}
}
