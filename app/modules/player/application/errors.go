package playerservice

import (
	"errors"

	playerdb "github.com/Black-And-White-Club/fantasy-league/app/modules/player/infrastructure/repositories"
)

var (
	ErrPlayerNotFound  = playerdb.ErrNotFound
	ErrDuplicatePlayer = playerdb.ErrDuplicate

	ErrTeamNotFound     = errors.New("nfl team not found")
	ErrNameRequired     = errors.New("player name is required")
	ErrNameTooLong      = errors.New("player name must be at most 100 characters")
	ErrPositionRequired = errors.New("player position is required")
	ErrInvalidPosition  = errors.New("player position is not a valid code")
	ErrInvalidTeamID    = errors.New("nfl team id must be greater than 0")
	ErrInvalidImageURL  = errors.New("player image url must be an absolute http or https url")
	ErrImageURLTooLong  = errors.New("player image url must be at most 500 characters")

	// ErrArtifactExists is returned by an ArchiveStore on a name collision.
	ErrArtifactExists = errors.New("archived artifact already exists")

	// ErrNoTransaction is returned when a batch is attempted without a TxRunner.
	ErrNoTransaction = errors.New("batch import requires a transaction runner")
)

// IsDomainError reports whether err is an expected business failure rather
// than an infrastructure fault.
func IsDomainError(err error) bool {
	for _, target := range []error{
		ErrPlayerNotFound, ErrDuplicatePlayer, ErrTeamNotFound,
		ErrNameRequired, ErrNameTooLong, ErrPositionRequired, ErrInvalidPosition,
		ErrInvalidTeamID, ErrInvalidImageURL, ErrImageURLTooLong,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
