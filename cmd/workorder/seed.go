package main

import (
	"fmt"

	"mecanica_workorder/internal/usecase"

	"github.com/spf13/cobra"
)

func newSeedCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the schema and load the sample data set into the configured store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closeStore, err := d.openStore(cmd.Context(), d.cfg, d.logger)
			if err != nil {
				return err
			}
			defer closeStore()

			data, err := usecase.NewSampleDataUseCase(store, d.logger).Seed(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "seeded %s store: %d vehicles, %d maintenance records, %d parts, %d links\n",
				d.cfg.StoreDriver, len(data.Vehicles), len(data.Maintenance), len(data.Parts), len(data.Links))
			return err
		},
	}
}
