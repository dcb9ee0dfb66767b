package cli

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teraseg/geoinsight/internal/application/insight"
	"github.com/teraseg/geoinsight/internal/application/pipeline"
	"github.com/teraseg/geoinsight/internal/application/scoring"
	"github.com/teraseg/geoinsight/internal/config"
	"github.com/teraseg/geoinsight/internal/infrastructure/boundary"
	"github.com/teraseg/geoinsight/internal/infrastructure/monitoring/logging"
	"github.com/teraseg/geoinsight/internal/infrastructure/tabular"
	"github.com/teraseg/geoinsight/pkg/errors"
)

type analyzeOptions struct {
	domain     string
	input      string
	output     string
	boundaries string
	strategy   string
}

func newAnalyzeCommand(root *rootOptions) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze an indicator spreadsheet and print the result document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, root, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.domain, "domain", "d", "", "analysis domain: pendidikan | kesehatan | pangan")
	cmd.Flags().StringVarP(&opts.input, "input", "f", "", "input spreadsheet (.xlsx, .xls or .csv)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.boundaries, "boundaries", "", "boundary GeoJSON path (overrides configuration)")
	cmd.Flags().StringVar(&opts.strategy, "strategy", string(insight.StrategyDeterministic),
		"insight strategy: deterministic | randomized")
	cmd.MarkFlagRequired("domain")
	cmd.MarkFlagRequired("input")
	return cmd
}

func runAnalyze(cmd *cobra.Command, root *rootOptions, opts *analyzeOptions) error {
	cfg, err := scoring.DomainByName(opts.domain)
	if err != nil {
		return err
	}

	boundaryCfg := config.BoundaryConfig{GeoJSONPath: opts.boundaries}
	if boundaryCfg.GeoJSONPath == "" {
		appCfg, err := loadConfig(root.configPath)
		if err != nil {
			return err
		}
		boundaryCfg = appCfg.Boundary
		boundaryCfg.CacheTTL = 0
	}

	file, err := os.Open(opts.input)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInputFormat, "cannot open input file").
			WithDetail(opts.input)
	}
	defer file.Close()

	table, err := tabular.Read(filepath.Base(opts.input), file)
	if err != nil {
		return err
	}

	store := boundary.NewStore(boundaryCfg, nil, logging.NewNopLogger())
	features, err := store.Features(cmd.Context())
	if err != nil {
		return err
	}

	scorer, err := scoring.NewScorer(cfg)
	if err != nil {
		return err
	}
	svc, err := pipeline.NewService(pipeline.ServiceConfig{
		Domain: cfg,
		Engine: insight.NewEngine(insight.Strategy(opts.strategy), scorer),
	})
	if err != nil {
		return err
	}

	result, err := svc.Run(cmd.Context(), table.Header, table.Rows, features)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return errors.Wrap(err, errors.ErrCodeInternal, "cannot create output file").
				WithDetail(opts.output)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
