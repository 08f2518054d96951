// ABOUTME: TUI command
// ABOUTME: Launches the interactive directory and messaging browser

package main

import (
	"github.com/spf13/cobra"

	"github.com/Aditya-web3/hack-team-up-now/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse teammates and conversations interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(commandContext(cmd), svc, currentUser())
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
