package nflteamdb

import "errors"

var (
	// ErrNotFound is returned when a team does not exist.
	ErrNotFound = errors.New("nfl team not found")

	// ErrDuplicateName is returned when another team already uses the name.
	ErrDuplicateName = errors.New("nfl team name already exists")

	// ErrHasPlayers is returned when deleting a team that players still reference.
	ErrHasPlayers = errors.New("nfl team still has players")
)
