package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/killallgit/podcast-backup/internal/archive"
	"github.com/killallgit/podcast-backup/internal/database"
	"github.com/killallgit/podcast-backup/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the archive index schema",
	Long: `Create or update the archive index tables.

Both the backup and serve commands migrate automatically on startup;
this command exists for provisioning the database ahead of time.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := archive.NewRepository(db.DB).Migrate(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Archive schema up to date at %s\n", cfg.Database.Path)
	return nil
}
