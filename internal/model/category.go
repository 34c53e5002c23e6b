package model

// Category is keyed by the upstream-assigned id, not a locally generated one.
// Re-ingesting the same id overwrites Name and OwnerID in place.
type Category struct {
	ID      int64  `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	OwnerID int64  `db:"owner_id" json:"owner_id"`
}
