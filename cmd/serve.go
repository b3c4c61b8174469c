package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/killallgit/podcast-backup/api"
	"github.com/killallgit/podcast-backup/api/types"
	"github.com/killallgit/podcast-backup/internal/archive"
	"github.com/killallgit/podcast-backup/internal/database"
	"github.com/killallgit/podcast-backup/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the archive API server",
	Long: `Start the read-only HTTP API over the archive index.

The server exposes the runs and episodes recorded by previous backups.

Example:
  podcast-backup serve
  podcast-backup serve --port 9090
  podcast-backup serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repo := archive.NewRepository(db.DB)
	if err := repo.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate archive schema: %w", err)
	}

	server := api.NewServer(fmt.Sprintf("%s:%d", serverHost, serverPort))
	server.SetDependencies(&types.Dependencies{
		DB:      db,
		Archive: repo,
	})
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	fmt.Printf("Archive API listening at %s:%d\n", serverHost, serverPort)

	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}
