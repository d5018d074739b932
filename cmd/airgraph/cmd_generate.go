package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/airgraph/builder"
	"github.com/katalvlaran/airgraph/geo"
	"github.com/katalvlaran/airgraph/ingest"
)

func (a *app) generateCmd() *cobra.Command {
	var (
		topology string
		n        int
		p        float64
		seed     int64
		iata     bool
		uniform  bool
		center   []float64
		radius   float64
		out      string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic route CSV (chain, cycle, star, complete or random)",
		Long: `generate writes a synthetic network in the same CSV layout the other
commands read, for load tests and demos.

Examples:
  airgraph generate --topology star -n 20 --iata > hub.csv
  airgraph generate --topology random -n 500 -p 0.01 --seed 7 --uniform --out random.csv`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cons, err := builder.Topology(topology, n, p)
			if err != nil {
				return err
			}
			if len(center) != 2 {
				return fmt.Errorf("--center wants LAT,LON, got %v", center)
			}
			c := geo.Coord{Lat: center[0], Lon: center[1]}
			place := builder.RingPlacement(c, radius)
			if uniform {
				place = builder.UniformPlacement(c, radius)
			}
			opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithPlacement(place)}
			if iata {
				opts = append(opts, builder.WithIATAIDs())
			}
			recs, err := builder.BuildRecords(opts, cons)
			if err != nil {
				return err
			}

			w := a.out
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err = ingest.NewWriter(w, ingest.WithDelimiter(a.cfg.Dataset.Rune())).WriteAll(recs); err != nil {
				return err
			}
			a.log.Info("routes generated", "topology", topology, "airports", n, "records", len(recs), "out", out)

			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&topology, "topology", builder.MethodStar, "chain, cycle, star, complete or random")
	fl.IntVarP(&n, "airports", "n", 10, "number of airports")
	fl.Float64VarP(&p, "probability", "p", 0.2, "route probability for random")
	fl.Int64Var(&seed, "seed", 1, "random seed")
	fl.BoolVar(&iata, "iata", false, "three-letter codes AAA, AAB, ...")
	fl.BoolVar(&uniform, "uniform", false, "scatter airports uniformly instead of on a ring")
	fl.Float64SliceVar(&center, "center", []float64{0, 0}, "LAT,LON of the layout center")
	fl.Float64Var(&radius, "radius", 10, "ring radius or scatter span in degrees")
	fl.StringVarP(&out, "out", "o", "", "output file; stdout when empty")

	return cmd
}
