package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/conelab/bounds"
)

type pagesOptions struct {
	step   int64
	limit  int64
	loaded []string
}

func newPagesCmd(root *rootOptions) *cobra.Command {
	opts := &pagesOptions{}
	cmd := &cobra.Command{
		Use:   "pages LO:HI...",
		Short: "Split time ranges into request pages",
		Long: `Split closed ranges LO:HI into pages of at most step*limit units.

Ranges already present in --loaded are removed first; nothing is printed
when everything is loaded.

Each output line is: start end progress.

Examples:
  conelab pages 0:50 60:150 --step 1 --limit 50
  conelab pages 0:20 --loaded 1:10 --loaded 13:15`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPages(cmd, root, opts, args)
		},
	}

	f := cmd.Flags()
	f.Int64Var(&opts.step, "step", 1, "units per candle")
	f.Int64Var(&opts.limit, "limit", 1000, "candles per request")
	f.StringArrayVar(&opts.loaded, "loaded", nil, "already loaded range LO:HI (repeatable)")

	return cmd
}

func runPages(cmd *cobra.Command, root *rootOptions, opts *pagesOptions, args []string) error {
	want, err := parseSet(args)
	if err != nil {
		return err
	}
	loaded, err := parseSet(opts.loaded)
	if err != nil {
		return err
	}

	todo := want.Minus(loaded)
	if todo.Empty() {
		root.logger.Info("conelab: nothing to load", "requested", want.String())
		return nil
	}

	pages, err := bounds.NewPages(todo, opts.step, opts.limit)
	if err != nil {
		return err
	}
	ls := bounds.NewLoadingState(pages)
	out := cmd.OutOrStdout()
	for pg, ok := ls.Next(); ok; pg, ok = ls.Next() {
		fmt.Fprintf(out, "%d %d %.2f\n", pg.Start, pg.End, ls.Progress())
	}

	return nil
}

func parseSet(args []string) (bounds.Set, error) {
	items := make([]bounds.Bounds, 0, len(args))
	for _, a := range args {
		b, err := parseBounds(a)
		if err != nil {
			return bounds.Set{}, err
		}
		items = append(items, b)
	}
	return bounds.NewSet(items...), nil
}

func parseBounds(s string) (bounds.Bounds, error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return bounds.Bounds{}, fmt.Errorf("range %q: want LO:HI", s)
	}
	l, err := strconv.ParseInt(lo, 10, 64)
	if err != nil {
		return bounds.Bounds{}, fmt.Errorf("range %q: %w", s, err)
	}
	h, err := strconv.ParseInt(hi, 10, 64)
	if err != nil {
		return bounds.Bounds{}, fmt.Errorf("range %q: %w", s, err)
	}
	return bounds.New(l, h)
}
