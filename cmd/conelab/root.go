package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	logLevel string
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "conelab",
		Short: "Explore cones, cycles and diamonds of random ini/fin graphs",
		Long: `conelab generates random directed graphs with ini (source) and fin
(target) nodes, applies cone/cycle edits and the diamond filter, and prints
the result as Graphviz DOT. It also splits time ranges into request pages.

Examples:
  conelab graph --config graph.yaml --seed 7 | dot -Tsvg > graph.svg
  conelab graph --seed 7 --delete-cone ini --steps 2 --hide-deleted
  conelab pages 0:50 60:150 --step 1 --limit 50`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := parseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	cmd.AddCommand(newGraphCmd(opts), newPagesCmd(opts))

	return cmd
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid --log-level %q: %w", s, err)
	}
	return level, nil
}
