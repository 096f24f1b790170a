package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"admanager/internal/core/domain"
)

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Show or change the database mode (local, mock-api, api)",
}

var modeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the active database mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			m, err := a.console.Mode(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m)
			return nil
		})
	},
}

var modeSetCmd = &cobra.Command{
	Use:       "set <mode>",
	Short:     "Persist a new database mode",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(domain.ModeLocal), string(domain.ModeMockAPI), string(domain.ModeAPI)},
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := domain.ParseMode(args[0])
		if err != nil {
			return err
		}
		return withApp(cmd.Context(), func(a *app) error {
			return a.console.SetMode(cmd.Context(), m)
		})
	},
}

func init() {
	modeCmd.AddCommand(modeGetCmd)
	modeCmd.AddCommand(modeSetCmd)
}
