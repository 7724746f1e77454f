package playerdomain

import "strings"

// Player status values.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// PlayerCandidate is one unvalidated line item of an uploaded batch.
type PlayerCandidate struct {
	ID        int     `json:"id"`
	Name      string  `json:"nombre"`
	Position  string  `json:"posicion"`
	NFLTeamID int     `json:"equipoNFLId"`
	ImageURL  *string `json:"imagenUrl,omitempty"`
}

// NameKey is the normalized name used for uniqueness checks.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ExistingPlayerKey identifies a persisted player for duplicate detection.
type ExistingPlayerKey struct {
	ID   int64
	Name string
}
