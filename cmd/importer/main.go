package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"podcast-importer/internal/config"
	"podcast-importer/internal/db"
	"podcast-importer/internal/importer"
	"podcast-importer/internal/storage"
)

// CommitSHA is set at build time via ldflags
var CommitSHA = "unknown"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "importer <feed-url> <show-id> [owner-id]",
		Short: "Import a podcast feed's episodes into the catalog",
		Long: "importer fetches a syndication feed, re-encodes every episode's audio to " +
			"the catalog MP3 format, uploads it to durable storage, and records the " +
			"episodes against the given show. An owner id overrides the show's owner " +
			"for storage key namespacing.",
		Args:          cobra.RangeArgs(2, 3),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	if err := godotenv.Load(); err != nil {
		sugar.Info("No .env file loaded")
	}
	cfg := config.Load()

	showID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid show id %q: %w", args[1], err)
	}
	ownerOverride := ""
	if len(args) == 3 {
		ownerOverride = args[2]
	}

	if err := db.InitDB(cfg.DatabaseURL); err != nil {
		return err
	}
	defer db.Close()

	store, err := storage.NewMinioUploader(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL, cfg.Bucket)
	if err != nil {
		return err
	}

	sugar.Infof("Importer starting (commit: %s)", CommitSHA)
	return importer.New(cfg, store, sugar).Run(cmd.Context(), args[0], showID, ownerOverride)
}
