package main

import (
	"os"

	"github.com/spf13/cobra"

	"ticketdesk/internal/interfaces/cli/server"
	"ticketdesk/internal/interfaces/cli/tickets"
	"ticketdesk/internal/interfaces/cli/version"
)

func main() {
	var env string

	rootCmd := &cobra.Command{
		Use:          "ticketdesk",
		Short:        "ticketdesk - a small web front end for support tickets",
		Long:         `ticketdesk serves a dashboard, list, detail and form pages over a local ticket store or a remote ticket API.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&env, "config-env", "", "Config environment for the tickets and users commands")

	load := tickets.DefaultLoader(&env)

	rootCmd.AddCommand(
		server.NewCommand(),
		tickets.NewCommand(load),
		tickets.NewUsersCommand(load),
		version.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
