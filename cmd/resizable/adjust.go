package main

import (
	"fmt"

	resizable "github.com/grindlemire/go-resizable"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

type adjustOptions struct {
	boundary int
	deltas   []float64
	coalesce bool
}

func (a *app) adjustCmd() *cobra.Command {
	var o adjustOptions

	cmd := &cobra.Command{
		Use:   "adjust <layout-file>",
		Short: "Drag a boundary and print each step",
		Long: `Open a drag session on one boundary and apply each --delta in turn,
printing the sizes after every step along with any panel that collapsed or
expanded. Deltas are in layout order: a positive delta grows the panel before
the boundary, whatever the layout's reverse or RTL settings.

Collapse snapping has a dead zone, so a drag split into small steps can end
somewhere else than the same distance applied at once. --coalesce sums the
deltas into a single step to compare.`,
		Example: `  resizable adjust editor.yaml --boundary 0 --delta=-16
  resizable adjust editor.yaml --boundary 0 --delta=-16 --delta=0.8 --coalesce`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAdjust(cmd, args[0], o)
		},
	}

	cmd.Flags().IntVar(&o.boundary, "boundary", 0, "boundary index, between panel N and N+1")
	cmd.Flags().Float64SliceVar(&o.deltas, "delta", nil, "percentage to move the boundary by (repeatable)")
	cmd.Flags().BoolVar(&o.coalesce, "coalesce", false, "apply the sum of all deltas as one step")
	_ = cmd.MarkFlagRequired("delta")
	return cmd
}

func (a *app) runAdjust(cmd *cobra.Command, path string, o adjustOptions) error {
	out := cmd.OutOrStdout()

	var events []string
	g, err := a.loadGroup(path,
		resizable.OnCollapse(func(id string) { events = append(events, "collapse "+id) }),
		resizable.OnExpand(func(id string) { events = append(events, "expand "+id) }),
	)
	if err != nil {
		return err
	}

	deltas := o.deltas
	if o.coalesce {
		deltas = []float64{floats.Sum(deltas)}
	}

	fmt.Fprintf(out, "start: %s\n", formatSizes(g.Sizes()))
	if err := g.StartResize(o.boundary); err != nil {
		return err
	}
	for _, d := range deltas {
		events = events[:0]
		sizes, err := g.Resize(d)
		if err != nil {
			_ = g.EndResize()
			return err
		}

		fmt.Fprintf(out, "delta %.2f: %s\n", d, formatSizes(sizes))
		for _, e := range events {
			fmt.Fprintf(out, "  %s\n", e)
		}
	}
	return g.EndResize()
}
