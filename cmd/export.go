package main

import (
	"github.com/spf13/cobra"

	"admanager/internal/adapter/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump every collection of the active mode as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			snap, err := a.console.Export(cmd.Context())
			if err != nil {
				return err
			}
			return export.WriteYAML(cmd.OutOrStdout(), snap)
		})
	},
}
