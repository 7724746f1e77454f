package playerdb

import "errors"

var (
	// ErrNotFound is returned when a player does not exist.
	ErrNotFound = errors.New("player not found")

	// ErrDuplicate is returned when an active player with the same name already plays for the team.
	ErrDuplicate = errors.New("player already exists for team")

	// ErrTeamReference is returned when the referenced NFL team does not exist.
	ErrTeamReference = errors.New("referenced nfl team does not exist")
)
