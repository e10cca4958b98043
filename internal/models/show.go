package models

// Show is the subset of the shows table the importer reads: the owner the
// storage keys are namespaced under and the image every imported episode
// falls back to.
type Show struct {
	ID       int64  `db:"id"`
	OwnerID  string `db:"owner_id"`
	ImageURL string `db:"image_url"`
}
