package main

import (
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/airgraph/bfs"
	"github.com/katalvlaran/airgraph/core"
	"github.com/katalvlaran/airgraph/dfs"
	"github.com/katalvlaran/airgraph/dijkstra"
	"github.com/katalvlaran/airgraph/matrix"
	"github.com/katalvlaran/airgraph/prim_kruskal"
)

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print airport and route counts, total distance and the busiest hub",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			g, err := a.load()
			if err != nil {
				return err
			}
			stats := g.Stats()
			comps := bfs.Components(g)
			if a.jsonOut {
				return a.printJSON(struct {
					core.GraphStats
					Connected  bool `json:"connected"`
					Components int  `json:"components"`
				}{stats, bfs.IsConnected(g), len(comps)})
			}

			tw := tabwriter.NewWriter(a.out, 0, 0, 1, ' ', 0)
			fmt.Fprintf(tw, "airports:\t%d\n", stats.VertexCount)
			fmt.Fprintf(tw, "routes:\t%d\n", stats.EdgeCount)
			fmt.Fprintf(tw, "total:\t%.2f km\n", stats.TotalWeight)
			if stats.Hub != "" {
				fmt.Fprintf(tw, "hub:\t%s (%d routes)\n", stats.Hub, stats.MaxDegree)
			}
			fmt.Fprintf(tw, "connected:\t%t (%d components)\n", bfs.IsConnected(g), len(comps))

			return tw.Flush()
		},
	}
}

func (a *app) componentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List connected components in discovery order",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			g, err := a.load()
			if err != nil {
				return err
			}
			comps := bfs.Components(g)
			if a.jsonOut {
				return a.printJSON(comps)
			}
			for i, c := range comps {
				fmt.Fprintf(a.out, "component %d (%d): %s\n", i+1, len(c), strings.Join(c, " "))
			}

			return nil
		},
	}
}

func (a *app) criticalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "critical",
		Short: "List airports and routes whose loss disconnects part of the network",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			g, err := a.load()
			if err != nil {
				return err
			}
			rep, err := dfs.Critical(g)
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(rep)
			}

			fmt.Fprintf(a.out, "critical airports (%d): %s\n", len(rep.Airports), strings.Join(rep.Airports, " "))
			fmt.Fprintf(a.out, "critical routes (%d):\n", len(rep.Routes))
			tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			for _, r := range rep.Routes {
				fmt.Fprintf(tw, "  %s\t%s\t%.2f km\n", r.From, r.To, r.Weight)
			}

			return tw.Flush()
		},
	}
}

func (a *app) mstCmd() *cobra.Command {
	var (
		method  string
		airport string
	)
	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Print the minimum spanning forest, or the tree of one airport's component",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			g, err := a.load()
			if err != nil {
				return err
			}
			var trees []prim_kruskal.Result
			switch {
			case airport != "":
				walk, err := bfs.BFS(g, code(airport))
				if err != nil {
					return err
				}
				tree, err := prim_kruskal.Prim(g, walk.Order)
				if err != nil {
					return err
				}
				trees = []prim_kruskal.Result{tree}
			case method == prim_kruskal.MethodPrim:
				if trees, err = prim_kruskal.Forest(g); err != nil {
					return err
				}
			default:
				forest, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(method))
				if err != nil {
					return err
				}
				trees = []prim_kruskal.Result{forest}
			}
			total := prim_kruskal.Merge(trees)
			if a.jsonOut {
				return a.printJSON(total)
			}

			tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			for i, t := range trees {
				fmt.Fprintf(tw, "tree %d: %d routes, %.2f km\n", i+1, len(t.Edges), t.TotalWeight)
				for _, e := range t.Edges {
					fmt.Fprintf(tw, "  %s - %s\t%.2f km\n", e.From, e.To, e.Weight)
				}
			}
			fmt.Fprintf(tw, "total: %.2f km\n", total.TotalWeight)

			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&method, "method", prim_kruskal.MethodPrim, "prim or kruskal")
	cmd.Flags().StringVar(&airport, "airport", "", "restrict to the component of this airport, rooted there")

	return cmd
}

func (a *app) reachCmd() *cobra.Command {
	var (
		hops  int
		legKm float64
	)
	cmd := &cobra.Command{
		Use:   "reach CODE",
		Short: "List airports within a number of connections, optionally within an aircraft range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if hops < 1 {
				return fmt.Errorf("--hops must be positive, got %d", hops)
			}
			opts := []bfs.Option{bfs.WithMaxHops(hops)}
			if cmd.Flags().Changed("max-leg") {
				opts = append(opts, bfs.WithMaxLegKm(legKm))
			}
			g, err := a.load()
			if err != nil {
				return err
			}
			walk, err := bfs.BFS(g, code(args[0]), opts...)
			if err != nil {
				return err
			}
			reached := walk.Reached()
			if a.jsonOut {
				return a.printJSON(reached)
			}

			tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			for _, h := range reached {
				fmt.Fprintf(tw, "%s\t%d\tvia %s\n", h.Code, h.Hops, h.Via)
			}

			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&hops, "hops", 2, "maximum number of connections")
	cmd.Flags().Float64Var(&legKm, "max-leg", 0, "skip routes longer than this many km")

	return cmd
}

func (a *app) distancesCmd() *cobra.Command {
	var maxAirports int
	cmd := &cobra.Command{
		Use:   "distances",
		Short: "Print the all-pairs shortest distance table of a small network",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			g, err := a.load()
			if err != nil {
				return err
			}
			if n := g.VertexCount(); n > maxAirports {
				return fmt.Errorf("network has %d airports, above --max-airports %d", n, maxAirports)
			}
			d, err := matrix.AllPairs(g)
			if err != nil {
				return err
			}
			codes := g.Codes()

			if a.jsonOut {
				rows := make([][]*float64, len(codes))
				for i := range codes {
					rows[i] = make([]*float64, len(codes))
					for j := range codes {
						if v, _ := d.At(i, j); !math.IsInf(v, 1) {
							rows[i][j] = &v
						}
					}
				}
				return a.printJSON(struct {
					Airports []string     `json:"airports"`
					Km       [][]*float64 `json:"km"`
				}{codes, rows})
			}

			tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintf(tw, "\t%s\t\n", strings.Join(codes, "\t"))
			for i, from := range codes {
				fmt.Fprintf(tw, "%s\t", from)
				for j := range codes {
					v, _ := d.At(i, j)
					if math.IsInf(v, 1) {
						fmt.Fprint(tw, "-\t")
						continue
					}
					fmt.Fprintf(tw, "%.2f\t", v)
				}
				fmt.Fprintln(tw)
			}

			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&maxAirports, "max-airports", 50, "refuse networks larger than this; the table costs O(V^3)")

	return cmd
}

func (a *app) farthestCmd() *cobra.Command {
	var k int
	cmd := &cobra.Command{
		Use:   "farthest CODE",
		Short: "List the airports with the longest shortest-path distance from CODE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("limit") {
				k = a.cfg.Queries.FarthestLimit
			}
			if k < 1 {
				return fmt.Errorf("-k must be positive, got %d", k)
			}
			g, err := a.load()
			if err != nil {
				return err
			}
			ranked, err := dijkstra.FarthestNodes(g, code(args[0]), k)
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(ranked)
			}

			tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', tabwriter.AlignRight)
			for i, r := range ranked {
				fmt.Fprintf(tw, "%d.\t%s\t%.2f km\t\n", i+1, r.Code, r.Distance)
			}

			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&k, "limit", "k", dijkstra.DefaultFarthestLimit, "number of airports; defaults to queries.farthest_limit")

	return cmd
}

func (a *app) pathCmd() *cobra.Command {
	var hops bool
	cmd := &cobra.Command{
		Use:   "path FROM TO",
		Short: "Print the shortest route between two airports",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := a.load()
			if err != nil {
				return err
			}
			route := dijkstra.Route
			if hops {
				route = dijkstra.FewestHops
			}
			it, err := route(g, code(args[0]), code(args[1]))
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(it)
			}
			if !it.Reachable {
				fmt.Fprintf(a.out, "no connection between %s and %s\n", it.From, it.To)
				return nil
			}

			fmt.Fprintf(a.out, "%s (%d legs, %s)\n", strings.Join(it.Path, " -> "), len(it.Legs), it.Total)
			tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			for _, l := range it.Legs {
				fmt.Fprintf(tw, "  %s -> %s\t%.2f km\n", l.From, l.To, l.Distance)
			}

			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&hops, "hops", false, "minimize connections instead of distance")

	return cmd
}
