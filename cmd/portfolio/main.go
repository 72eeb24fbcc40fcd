// Package main is the entry point for the portfolio web server.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "portfolio",
	Short:         "Personal portfolio web server",
	Long:          "Serves a single-page personal portfolio with a sidebar menu, a resume preview and a contact form.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "portfolio.yaml", "Path to YAML config file (optional)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
