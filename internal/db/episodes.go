package db

import (
	"fmt"

	"podcast-importer/internal/models"
)

const (
	StatusPublished = "published"

	CompressionCompressed = "compressed"
)

const insertEpisodeQuery = `
	INSERT INTO episodes (
		show_id, title, description, image_url, nginx_image_url, storage_url,
		position, publish_date, created_at, season, duration, deleted, status,
		compression_status, storage_used, original_url, original_file_size,
		original_duration
	) VALUES (
		:show_id, :title, :description, :image_url, :nginx_image_url, :storage_url,
		:position, :publish_date, :created_at, :season, :duration, :deleted, :status,
		:compression_status, :storage_used, :original_url, :original_file_size,
		:original_duration
	) RETURNING id`

// InsertEpisodes writes the surviving records in one transaction and returns
// them with their assigned ids, in input order. Any failure rolls the whole
// batch back.
func InsertEpisodes(episodes []models.Episode) ([]models.Episode, error) {
	if len(episodes) == 0 {
		return nil, nil
	}

	tx, err := DB.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareNamed(insertEpisodeQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare episode insert: %w", err)
	}
	defer stmt.Close()

	inserted := make([]models.Episode, 0, len(episodes))
	for _, episode := range episodes {
		var id int64
		if err := stmt.Get(&id, episode); err != nil {
			return nil, fmt.Errorf("failed to insert episode %q: %w", episode.Title, err)
		}
		episode.ID = id
		inserted = append(inserted, episode)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit episode insert: %w", err)
	}
	return inserted, nil
}

// UpdateEpisodeStorageURL rewrites the storage URL of an inserted episode
// once its id is known.
func UpdateEpisodeStorageURL(id int64, storageURL string) error {
	_, err := DB.Exec("UPDATE episodes SET storage_url = $1 WHERE id = $2", storageURL, id)
	return err
}
