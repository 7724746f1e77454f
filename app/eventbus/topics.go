package eventbus

import "time"

const (
	// PlayersBatchImportedTopic is published after a batch import commits.
	PlayersBatchImportedTopic = "players.batch.imported"

	// PlayerDesignationUpdatedTopic is published after injury news changes a
	// player's designation.
	PlayerDesignationUpdatedTopic = "players.designation.updated"
)

// PlayersBatchImportedPayload describes a committed batch import.
type PlayersBatchImportedPayload struct {
	ImportID     string    `json:"import_id"`
	FileName     string    `json:"file_name"`
	ArchivedAs   string    `json:"archived_as"`
	PlayerIDs    []int64   `json:"player_ids"`
	TotalCreated int       `json:"total_created"`
	ImportedAt   time.Time `json:"imported_at"`
}

// PlayerDesignationUpdatedPayload describes an injury designation change.
type PlayerDesignationUpdatedPayload struct {
	PlayerID    int64     `json:"player_id"`
	NewsID      int64     `json:"news_id"`
	Designation *string   `json:"designation"`
	UpdatedAt   time.Time `json:"updated_at"`
}
