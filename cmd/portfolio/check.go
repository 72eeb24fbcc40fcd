package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/priyanka7411/portfolio/internal/assets"
	"github.com/priyanka7411/portfolio/internal/config"
	"github.com/priyanka7411/portfolio/internal/content"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration, content and the resume file",
	Long: `Load everything the server needs at startup and report problems without
serving. A missing resume is reported but is not an error, since the site
degrades to a notice in that case.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ config: listening on %s, mode %s\n", cfg.Addr(), cfg.Server.Mode)

	store, err := content.New(content.Default)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ content: %d projects, %d certifications\n", len(store.Projects()), len(store.Certifications()))

	if cfg.SMTP.Contact().Enabled() {
		fmt.Fprintf(out, "✓ contact: delivering to %s via %s:%s\n", cfg.SMTP.To, cfg.SMTP.Host, cfg.SMTP.Port)
	} else {
		fmt.Fprintln(out, "- contact: SMTP not configured, messages are acknowledged only")
	}

	asset, err := assets.NewCache().Load(cfg.Resume.Path)
	if err != nil {
		fmt.Fprintf(out, "! resume: %v\n", err)
		return nil
	}
	fmt.Fprintf(out, "✓ resume: %s (%d bytes)\n", asset.Name, asset.Size())
	return nil
}
