package models

import "time"

// Episode is one row of the episodes table. A record is assembled in full by
// the import pipeline and handed to the db package; only StorageURL changes
// afterwards, when the assigned id is appended post-insert.
type Episode struct {
	ID                int64      `db:"id"`
	ShowID            int64      `db:"show_id"`
	Title             string     `db:"title"`
	Description       string     `db:"description"`
	ImageURL          string     `db:"image_url"`
	NginxImageURL     string     `db:"nginx_image_url"`
	StorageURL        string     `db:"storage_url"`
	Position          int        `db:"position"`
	PublishDate       *time.Time `db:"publish_date"`
	CreatedAt         *time.Time `db:"created_at"`
	Season            int        `db:"season"`
	Duration          string     `db:"duration"`
	Deleted           bool       `db:"deleted"`
	Status            string     `db:"status"`
	CompressionStatus string     `db:"compression_status"`
	StorageUsed       int64      `db:"storage_used"`
	OriginalURL       string     `db:"original_url"`
	OriginalFileSize  int64      `db:"original_file_size"`
	OriginalDuration  string     `db:"original_duration"`
}
