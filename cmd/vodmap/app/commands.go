package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/vodmap/cmd/vodmap/cmd/discover"
	"github.com/agentstation/vodmap/cmd/vodmap/cmd/extract"
	"github.com/agentstation/vodmap/cmd/vodmap/cmd/list"
	"github.com/agentstation/vodmap/cmd/vodmap/cmd/probe"
	"github.com/agentstation/vodmap/cmd/vodmap/cmd/version"
)

// registerCommands registers all subcommands with the root command.
// This is where we wire up all the command handlers.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(discover.NewCommand(a))
	rootCmd.AddCommand(probe.NewCommand(a))
	rootCmd.AddCommand(extract.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(list.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
}
