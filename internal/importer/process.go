package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"podcast-importer/internal/db"
	"podcast-importer/internal/feed"
	"podcast-importer/internal/models"
)

// ErrNoEnclosure marks an item that carries no downloadable media.
var ErrNoEnclosure = errors.New("item has no enclosure")

// processItem turns one feed item into a persisted-ready episode record:
// fetch the enclosure audio, transcode it to the catalog MP3 format, upload
// it under a fresh storage key, and assemble the metadata. Every failure
// propagates; isolating them is the orchestrator's job.
func (imp *Importer) processItem(ctx context.Context, b batch, item feed.Item, index int) (*models.Episode, error) {
	if len(item.Enclosures) == 0 {
		return nil, ErrNoEnclosure
	}
	enclosure := item.Enclosures[0]

	audio, err := imp.fetchAudio(ctx, enclosure.URL)
	if err != nil {
		return nil, err
	}

	mp3, err := imp.transcode(audio, audioExt(enclosure.URL))
	if err != nil {
		return nil, err
	}
	audioSize := int64(len(mp3))

	audioKey := b.keys.Make("mp3")
	if err := imp.store.Upload(ctx, audioKey, mp3, "audio/mpeg"); err != nil {
		return nil, err
	}

	imageURL := imp.cfg.MediaBaseURL + b.defaultImageKey

	return &models.Episode{
		ShowID:            b.showID,
		Title:             item.Title,
		Description:       "<p>" + item.Description + "</p>",
		ImageURL:          imageURL,
		NginxImageURL:     strings.Replace(imageURL, imp.cfg.KeyNamespace+"/", "img/", 1),
		StorageURL:        fmt.Sprintf("%s%s?show_id=%d&episode_id=", imp.cfg.RecordsBaseURL, audioKey, b.showID),
		Position:          index + 1,
		PublishDate:       item.Published,
		CreatedAt:         item.Created,
		Season:            1,
		Duration:          enclosure.Length,
		Deleted:           false,
		Status:            db.StatusPublished,
		CompressionStatus: db.CompressionCompressed,
		StorageUsed:       audioSize,
		OriginalURL:       imp.cfg.OriginBaseURL + audioKey,
		OriginalFileSize:  audioSize,
		OriginalDuration:  enclosure.Length,
	}, nil
}

// fetchAudio downloads the enclosure in one attempt. No retries: a failed
// fetch fails the item.
func (imp *Importer) fetchAudio(ctx context.Context, url string) ([]byte, error) {
	if imp.fetchLimit != nil {
		if err := imp.fetchLimit.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build audio request: %w", err)
	}

	resp, err := imp.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to fetch audio: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio body: %w", err)
	}
	return data, nil
}

// audioExt extracts the file extension from an audio URL with its query
// parameters stripped. The result hints the input container to ffmpeg.
func audioExt(rawURL string) string {
	clean := rawURL
	if i := strings.Index(clean, "?"); i >= 0 {
		clean = clean[:i]
	}
	return strings.TrimPrefix(path.Ext(clean), ".")
}
