package db

import (
	"podcast-importer/internal/models"
)

// GetShow returns the show the imported episodes belong to.
func GetShow(id int64) (models.Show, error) {
	show := models.Show{}
	err := DB.Get(&show, "SELECT id, owner_id, image_url FROM shows WHERE id = $1", id)
	return show, err
}
