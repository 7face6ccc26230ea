package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/LianHaeming/weekplan/advisor"
	"github.com/LianHaeming/weekplan/config"
	"github.com/LianHaeming/weekplan/handlers"
	"github.com/LianHaeming/weekplan/server"
	"github.com/LianHaeming/weekplan/tmpl"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planner web form",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, a)
		},
	}
	addServeFlags(cmd.Flags())
	return cmd
}

func addServeFlags(fs *pflag.FlagSet) {
	fs.String("host", config.DefaultHost, "listen host")
	fs.String("port", config.DefaultPort, "listen port")
}

func runServe(ctx context.Context, a *app) error {
	templates, err := tmpl.Load(assetVersion())
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	a.logger.Info("configuration loaded",
		zap.String("addr", a.cfg.Addr()),
		zap.Bool("geminiKey", a.cfg.AdvisoryConfigured()),
		zap.Bool("crewKey", a.cfg.CrewConfigured()),
		zap.String("model", a.cfg.GeminiModel))

	deps := &handlers.Deps{
		Config:    a.cfg,
		Advisor:   advisor.New(ctx, a.cfg, a.logger),
		Templates: templates,
		Logger:    a.logger,
	}

	return server.New(deps).Run(ctx, a.cfg.Addr())
}
