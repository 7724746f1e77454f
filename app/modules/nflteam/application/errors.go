package nflteamservice

import (
	"errors"

	nflteamdb "github.com/Black-And-White-Club/fantasy-league/app/modules/nflteam/infrastructure/repositories"
)

var (
	ErrTeamNotFound   = nflteamdb.ErrNotFound
	ErrDuplicateName  = nflteamdb.ErrDuplicateName
	ErrTeamHasPlayers = nflteamdb.ErrHasPlayers

	ErrNameRequired    = errors.New("team name is required")
	ErrNameTooLong     = errors.New("team name must be at most 100 characters")
	ErrCityRequired    = errors.New("team city is required")
	ErrCityTooLong     = errors.New("team city must be at most 100 characters")
	ErrInvalidImageURL = errors.New("team image url must be an absolute http or https url")
)

// IsDomainError reports whether err is an expected business failure rather
// than an infrastructure fault.
func IsDomainError(err error) bool {
	for _, target := range []error{
		ErrTeamNotFound, ErrDuplicateName, ErrTeamHasPlayers,
		ErrNameRequired, ErrNameTooLong, ErrCityRequired, ErrCityTooLong, ErrInvalidImageURL,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
