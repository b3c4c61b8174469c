package cmd

import (
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/killallgit/podcast-backup/internal/archive"
	"github.com/killallgit/podcast-backup/internal/backup"
	"github.com/killallgit/podcast-backup/internal/database"
	"github.com/killallgit/podcast-backup/internal/feed"
	"github.com/killallgit/podcast-backup/pkg/config"
	"github.com/killallgit/podcast-backup/pkg/download"
)

var (
	backupFeedURL   string
	backupOutputDir string
	backupNoIndex   bool
)

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up a podcast feed to local storage",
	Long: `Run the backup pipeline once against the configured feed.

Downloads every episode's audio to audio/, cover art to images/, and a
JSON metadata sidecar to json/ under the output directory. Individual
download failures are logged and the run continues; only a feed-level
fetch or parse failure aborts.

Example:
  podcast-backup backup --feed https://example.com/feed.xml --output ./backup`,
	RunE: runBackup,
}

func init() {
	rootCmd.AddCommand(backupCmd)

	backupCmd.Flags().StringVar(&backupFeedURL, "feed", "", "feed URL (overrides config)")
	backupCmd.Flags().StringVar(&backupOutputDir, "output", "", "output directory (overrides config)")
	backupCmd.Flags().BoolVar(&backupNoIndex, "no-index", false, "skip recording run history in the archive index")
}

func runBackup(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	feedURL := backupFeedURL
	if feedURL == "" {
		feedURL = cfg.Backup.FeedURL
	}
	if feedURL == "" {
		return fmt.Errorf("no feed URL configured; set backup.feed_url or pass --feed")
	}

	outputDir := backupOutputDir
	if outputDir == "" {
		outputDir = cfg.Backup.OutputDir
	}

	var opts []backup.Option
	if !backupNoIndex {
		db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
		if err != nil {
			log.Printf("[ERROR] Archive index unavailable, continuing without history: %v", err)
		} else {
			defer db.Close()
			repo := archive.NewRepository(db.DB)
			if err := repo.Migrate(); err != nil {
				log.Printf("[ERROR] Archive index migration failed, continuing without history: %v", err)
			} else {
				opts = append(opts, backup.WithRecorder(repo))
			}
		}
	}

	orchestrator := backup.NewOrchestrator(
		feed.NewFetcher(cfg.Feed.Timeout, cfg.Download.UserAgent),
		feed.NewParser(),
		download.NewDownloader(download.Options{
			Timeout:   cfg.Download.Timeout,
			UserAgent: cfg.Download.UserAgent,
			MaxSize:   cfg.Download.MaxSize,
			RateLimit: cfg.Download.RateLimit,
		}),
		opts...,
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("[INFO] Backing up %s to %s", feedURL, outputDir)
	if err := orchestrator.Run(ctx, feedURL, outputDir); err != nil {
		log.Printf("[ERROR] Backup failed: %v", err)
		return err
	}
	return nil
}
