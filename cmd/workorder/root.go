package main

import (
	"context"

	"mecanica_workorder/internal/adapter/persistence/repository"
	"mecanica_workorder/internal/infrastructure/config"
	"mecanica_workorder/internal/infrastructure/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type storeOpener func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.WorkOrderStore, func(), error)

// deps are resolved once per invocation by the root command.
type deps struct {
	loadConfig func() (*config.Config, error)
	newLogger  func(level string) (*zap.Logger, error)
	openStore  storeOpener

	cfg    *config.Config
	logger *zap.Logger
}

func defaultDeps() *deps {
	return &deps{
		loadConfig: config.Load,
		newLogger:  logger.New,
		openStore:  repository.NewWorkOrderStore,
	}
}

func newRootCmd(d *deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "workorder",
		Short:         "Work order summaries for vehicle maintenance records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := d.loadConfig()
			if err != nil {
				return err
			}
			log, err := d.newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			d.cfg, d.logger = cfg, log
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if d.logger != nil {
				_ = d.logger.Sync()
			}
		},
	}

	root.AddCommand(newSummaryCmd(d), newSeedCmd(d))
	return root
}
