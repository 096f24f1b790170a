package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"admanager/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a demo hierarchy of clients, projects, campaigns, ad sets and ads",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			res, err := db.Seed(cmd.Context(), a.console)
			if err != nil {
				return err
			}
			a.logger.Info("seed complete",
				slog.Int("clients", len(res.Clients)),
				slog.Int("projects", len(res.Projects)),
				slog.Int("campaigns", len(res.Campaigns)),
				slog.Int("ad_sets", len(res.AdSets)),
				slog.Int("ads", len(res.Ads)))
			return printJSON(cmd, res)
		})
	},
}
