// ABOUTME: Whoami and use commands
// ABOUTME: Shows and persists the acting user

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Aditya-web3/hack-team-up-now/internal/config"
	"github.com/Aditya-web3/hack-team-up-now/internal/identity"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show current identity",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

var useCmd = &cobra.Command{
	Use:   "use <user>",
	Short: "Save the default acting user to the config file",
	Args:  cobra.ExactArgs(1),
	RunE:  runUse,
}

func init() {
	rootCmd.AddCommand(whoamiCmd, useCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	u, err := svc.Profile(commandContext(cmd), currentUser())
	if err != nil {
		return err
	}
	fmt.Printf("Identity: %s\n", identity.Label(*u))

	if cfg.DBPath != "" {
		fmt.Printf("Store: %s\n", cfg.DBPath)
	} else {
		fmt.Println("Store: in-memory")
	}
	return nil
}

func runUse(cmd *cobra.Command, args []string) error {
	u, err := svc.Profile(commandContext(cmd), args[0])
	if err != nil {
		return err
	}

	path := configPath
	if path == "" {
		path = config.GetConfigPath()
	}
	if err := config.SaveCurrentUser(path, u.ID); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	cfg.CurrentUser = u.ID

	color.Green("Acting as %s", identity.Label(*u))
	fmt.Printf("Saved to %s\n", path)
	return nil
}
