// Package importer drives the feed import batch: it fans the feed's items
// out over a bounded number of workers, processes each one independently,
// and persists whatever survived.
package importer

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"podcast-importer/internal/config"
	"podcast-importer/internal/db"
	"podcast-importer/internal/feed"
	"podcast-importer/internal/models"
	"podcast-importer/internal/storage"
	"podcast-importer/internal/transcode"
)

// Result is the outcome of one feed item: either an assembled episode or the
// error that stopped it. Failed items stay in the result set so the batch
// always resolves every slot.
type Result struct {
	Title   string
	Episode *models.Episode
	Err     error
}

// Importer runs import batches.
type Importer struct {
	cfg        *config.Config
	store      storage.Uploader
	log        *zap.SugaredLogger
	client     *http.Client
	fetchLimit *rate.Limiter
	transcode  func(data []byte, extHint string) ([]byte, error)
}

// New builds an Importer.
func New(cfg *config.Config, store storage.Uploader, logger *zap.SugaredLogger) *Importer {
	imp := &Importer{
		cfg:       cfg,
		store:     store,
		log:       logger,
		client:    http.DefaultClient,
		transcode: transcode.ToMP3,
	}
	if cfg.FetchRPS > 0 {
		imp.fetchLimit = rate.NewLimiter(rate.Limit(cfg.FetchRPS), 1)
	}
	return imp
}

// batch carries the per-run values resolved before any item is processed, so
// no worker depends on state that could still be changing.
type batch struct {
	keys            *storage.Keys
	showID          int64
	defaultImageKey string
}

// Run imports the feed at feedURL into the given show. Items are processed
// oldest first (the feed lists newest first) so positions count up from the
// earliest episode. Per-item failures are logged and dropped; only feed,
// show lookup, and persistence failures abort the batch.
func (imp *Importer) Run(ctx context.Context, feedURL string, showID int64, ownerOverride string) error {
	f, err := feed.Fetch(ctx, imp.client, feedURL)
	if err != nil {
		return err
	}

	show, err := db.GetShow(showID)
	if err != nil {
		return fmt.Errorf("failed to look up show %d: %w", showID, err)
	}

	owner := show.OwnerID
	if ownerOverride != "" {
		owner = ownerOverride
	}

	b := batch{
		keys:            storage.NewKeys(imp.cfg.KeyNamespace, owner),
		showID:          showID,
		defaultImageKey: strings.TrimPrefix(show.ImageURL, imp.cfg.OriginBaseURL),
	}

	items := lo.Reverse(f.Items)
	imp.log.Infof("Total episodes to process: %d", len(items))

	results := imp.processAll(ctx, b, items)

	episodes := lo.FilterMap(results, func(r Result, _ int) (models.Episode, bool) {
		if r.Err != nil {
			return models.Episode{}, false
		}
		return *r.Episode, true
	})

	inserted, err := db.InsertEpisodes(episodes)
	if err != nil {
		return err
	}

	for _, episode := range inserted {
		patched := episode.StorageURL + strconv.FormatInt(episode.ID, 10)
		if err := db.UpdateEpisodeStorageURL(episode.ID, patched); err != nil {
			return fmt.Errorf("failed to patch storage url for episode %d: %w", episode.ID, err)
		}
	}

	imp.log.Infof("Imported %d of %d episodes", len(inserted), len(items))
	return nil
}

// processAll runs every item through processItem with at most
// cfg.Concurrency in flight. Go blocks once the limit is reached, so items
// start in submission order. Workers record their outcome in their own slot
// and always return nil; one failed item never stops the group.
func (imp *Importer) processAll(ctx context.Context, b batch, items []feed.Item) []Result {
	results := make([]Result, len(items))

	g := new(errgroup.Group)
	g.SetLimit(imp.cfg.Concurrency)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			episode, err := imp.processItem(ctx, b, item, i)
			if err != nil {
				imp.log.Infof("Could not process episode %s: %v", item.Title, err)
				results[i] = Result{Title: item.Title, Err: err}
				return nil
			}
			imp.log.Infof("Processed episode %s", item.Title)
			results[i] = Result{Title: item.Title, Episode: episode}
			return nil
		})
	}

	g.Wait()
	return results
}
