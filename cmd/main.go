package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// rootCmd is the admanager entry point. Every subcommand reads the same
// environment configuration as the server.
var rootCmd = &cobra.Command{
	Use:   "admanager",
	Short: "Manage advertising clients, projects, campaigns, ad sets and ads",
	Long: `admanager stores the Client > Project > Campaign > AdSet > Ad hierarchy
in a pluggable key-value store and serves it over HTTP.

Configuration is read from the environment, see STORAGE_DRIVER, ID_SCHEME
and the driver specific variables.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(modeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(seedCmd)
	for _, c := range entityCmds() {
		rootCmd.AddCommand(c)
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	cancel()
	if err != nil {
		os.Exit(1)
	}
}
