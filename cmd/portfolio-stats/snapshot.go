package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vilaca/portfolio-stats/internal/dashboard"
)

func newSnapshotCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Fetch every source once and print the merged statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			aggregator := buildAggregator(a.cfg, a.logger)

			agg, id, err := aggregator.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("snapshot interrupted: %w", err)
			}
			a.logger.Debug("snapshot ready", zap.String("view", id))

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(agg)
			}
			return dashboard.NewTerminalRenderer().RenderStats(cmd.OutOrStdout(), agg)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of cards")

	return cmd
}
