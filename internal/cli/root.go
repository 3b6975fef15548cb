package cli

import (
	"github.com/spf13/cobra"

	"github.com/wgomg/digest/internal/abstractive"
	"github.com/wgomg/digest/internal/comparison"
	"github.com/wgomg/digest/internal/config"
	"github.com/wgomg/digest/internal/extractive"
	"github.com/wgomg/digest/internal/source"
	"github.com/wgomg/digest/internal/utils"
)

// app carries what every subcommand needs once the root has parsed its flags.
type app struct {
	cfg    *config.Config
	logger *utils.Logger
}

func RootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "digest",
		Short:         "Compare extractive and abstractive summaries of a text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides APP_LOG_LEVEL)")
	root.PersistentFlags().Bool("log-json", false, "Write logs as JSON lines")

	root.AddCommand(
		summarizeCmd(a),
		serveCmd(a),
		samplesCmd(a),
		methodsCmd(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if level, _ := flags.GetString("log-level"); level != "" {
		cfg.App.LogLevel = level
	}
	if flags.Changed("log-json") {
		cfg.App.LogJSON, _ = flags.GetBool("log-json")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = utils.NewLoggerWithWriter(cmd.ErrOrStderr(), cfg.App.LogLevel, cfg.App.RawBodyLog, cfg.App.LogJSON)
	return nil
}

func (a *app) newEngine() (*extractive.Engine, error) {
	return extractive.NewEngine(extractive.Options{
		Rank: extractive.RankOptions{
			Damping:       a.cfg.Graph.Damping,
			MaxIterations: a.cfg.Graph.MaxIterations,
			Tolerance:     a.cfg.Graph.Tolerance,
		},
	})
}

// newRunner wires the hosted models in only when an endpoint is configured;
// otherwise abstractive candidates are reported as unavailable.
func (a *app) newRunner(engine *extractive.Engine) *comparison.Runner {
	if !a.cfg.AbstractiveEnabled() {
		a.logger.Debug(nil, "Abstractive models disabled: ABSTRACTIVE_TOKEN is not set")
		return comparison.NewRunner(engine, nil, a.logger)
	}

	client, err := abstractive.NewClient(a.cfg, a.logger)
	if err != nil {
		a.logger.Warn(nil, "Abstractive client unavailable: %v", err)
		return comparison.NewRunner(engine, nil, a.logger)
	}
	return comparison.NewRunner(engine, client, a.logger)
}

func (a *app) samples() source.Samples {
	samples, err := source.LoadSamples(a.cfg.Source.SamplesPath)
	if err != nil {
		a.logger.Warn(nil, "Using built-in samples: %v", err)
	}
	return samples
}
