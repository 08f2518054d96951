// ABOUTME: Entry point for the teamup CLI
// ABOUTME: Loads .env files and runs the root command

package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is normal.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
