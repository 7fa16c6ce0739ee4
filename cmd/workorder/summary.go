package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	response "mecanica_workorder/internal/adapter/http/dto/response"
	"mecanica_workorder/internal/adapter/presenter"
	"mecanica_workorder/internal/usecase"

	"github.com/spf13/cobra"
)

func newSummaryCmd(d *deps) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary <plate>",
		Short: "Print the work order summary of a vehicle's latest maintenance record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := d.openStore(cmd.Context(), d.cfg, d.logger)
			if err != nil {
				return err
			}
			defer closeStore()

			ctx, cancel := context.WithTimeout(cmd.Context(), d.cfg.QueryTimeout)
			defer cancel()

			result, err := usecase.NewWorkOrderSummaryUseCase(store, d.logger).Build(ctx, args[0])
			switch {
			case errors.Is(err, usecase.ErrWorkOrderNotFound):
				return fmt.Errorf("no such vehicle/record: %s", usecase.NormalizePlate(args[0]))
			case err != nil:
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(response.FromWorkOrderResult(result))
			}
			_, err = fmt.Fprint(out, presenter.RenderText(result))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")
	return cmd
}
