package main

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/airgraph/config"
	"github.com/katalvlaran/airgraph/core"
	"github.com/katalvlaran/airgraph/ingest"
)

var errNoDataset = errors.New("no dataset: set dataset.path in the config or pass --data")

// app carries flags and resolved state shared by all commands.
type app struct {
	cfgPath  string
	dataPath string
	logLevel string
	jsonOut  bool

	cfg    config.Config
	log    *slog.Logger
	store  *core.Store
	out    io.Writer
	errOut io.Writer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{store: core.NewStore(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "airgraph",
		Short: "Query a worldwide flight-route network",
		Long: `airgraph builds an undirected route network from a CSV of geocoded
routes, weighting every route by its great-circle distance, and answers
queries over it.

Examples:
  airgraph --data flights_final.csv stats
  airgraph --data flights_final.csv path jfk nrt
  airgraph --data flights_final.csv farthest LHR -k 5
  airgraph --config airgraph.yaml serve`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgPath, "config", "c", "", "YAML config file")
	pf.StringVarP(&a.dataPath, "data", "d", "", "route CSV, overrides dataset.path")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error; overrides log.level")
	pf.BoolVar(&a.jsonOut, "json", false, "print results as JSON")

	root.AddCommand(
		a.statsCmd(),
		a.componentsCmd(),
		a.criticalCmd(),
		a.mstCmd(),
		a.distancesCmd(),
		a.farthestCmd(),
		a.pathCmd(),
		a.reachCmd(),
		a.serveCmd(),
		a.generateCmd(),
	)

	return root
}

// setup resolves configuration: file, then flag overrides, then validation.
func (a *app) setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.dataPath != "" {
		cfg.Dataset.Path = a.dataPath
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err = cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.log = cfg.Log.Logger(a.errOut)

	return nil
}

// load reads the configured dataset into the store.
func (a *app) load() (*core.Graph, error) {
	if a.cfg.Dataset.Path == "" {
		return nil, errNoDataset
	}

	return ingest.LoadFile(a.store, a.cfg.Dataset.Path, a.ingestOptions()...)
}

func (a *app) ingestOptions() []ingest.Option {
	return []ingest.Option{
		ingest.WithDelimiter(a.cfg.Dataset.Rune()),
		ingest.WithLogger(a.log),
	}
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// code normalizes a user-supplied airport code; lookups are exact-match.
func code(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
