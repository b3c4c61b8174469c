package cmd

import (
	"os"

	"github.com/killallgit/podcast-backup/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "podcast-backup",
	Short: "Podcast feed backup tool",
	Long: `Podcast Backup - archive a podcast's episodes to local storage

Fetches a podcast RSS feed and downloads each episode's audio and cover
image alongside a JSON metadata sidecar. Run history is recorded in a
SQLite archive index, which the serve command exposes over HTTP.

Commands:
  backup   Run the backup pipeline once
  serve    Start the archive API server
  migrate  Apply the archive index schema`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// loadConfig initializes configuration lazily, only for commands that need it
func loadConfig() error {
	return config.Init()
}
