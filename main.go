package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/LianHaeming/weekplan/config"
)

// BuildVersion is set at compile time via -ldflags.
// If empty (local dev), falls back to a timestamp so assets are never cached.
var BuildVersion string

// app carries what the persistent pre-run builds for every subcommand.
type app struct {
	cfgFile string
	envFile string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "weekplan",
		Short: "Weekly time planner",
		Long: `weekplan turns a daily routine (study, health, social, sleep and work
hours) into a seven-day plan, optionally with a generated suggestion.

Run without a subcommand to start the web form.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.Options{
				ConfigFile: a.cfgFile,
				EnvFile:    a.envFile,
				Flags:      cmd.Flags(),
			})
			if err != nil {
				return err
			}
			a.cfg = cfg

			logger, err := newLogger(cfg.Debug)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file")
	pf.StringVar(&a.envFile, "env-file", config.DefaultEnvFile, `dotenv file to load ("-" to skip)`)
	pf.Bool("debug", false, "enable debug logging")
	pf.String("gemini-model", config.DefaultGeminiModel, "model used for suggestions")

	serve := newServeCmd(a)
	root.AddCommand(serve, newPlanCmd(a))

	// Bare "weekplan" behaves like "weekplan serve".
	addServeFlags(root.Flags())
	root.RunE = serve.RunE

	return root
}

func newLogger(debug bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if debug {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}

func assetVersion() string {
	if BuildVersion != "" {
		return BuildVersion
	}
	return strconv.FormatInt(time.Now().Unix(), 10)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
