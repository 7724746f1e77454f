package newsservice

import (
	"errors"

	newsdb "github.com/Black-And-White-Club/fantasy-league/app/modules/news/infrastructure/repositories"
	playerdb "github.com/Black-And-White-Club/fantasy-league/app/modules/player/infrastructure/repositories"
)

var (
	ErrNewsNotFound   = newsdb.ErrNotFound
	ErrPlayerNotFound = playerdb.ErrNotFound

	ErrPlayerInactive     = errors.New("player is not active")
	ErrTextRequired       = errors.New("news text is required")
	ErrTextTooLong        = errors.New("news text must be at most 1000 characters")
	ErrSummaryRequired    = errors.New("injury summary is required for injury news")
	ErrSummaryTooLong     = errors.New("injury summary must be at most 200 characters")
	ErrDescriptionTooLong = errors.New("injury description must be at most 1000 characters")
	ErrInvalidDesignation = errors.New("invalid injury designation")
	ErrAuthorRequired     = errors.New("news author is required")
)

// IsDomainError reports whether err is an expected business failure rather
// than an infrastructure fault.
func IsDomainError(err error) bool {
	for _, target := range []error{
		ErrNewsNotFound, ErrPlayerNotFound, ErrPlayerInactive,
		ErrTextRequired, ErrTextTooLong, ErrSummaryRequired, ErrSummaryTooLong,
		ErrDescriptionTooLong, ErrInvalidDesignation, ErrAuthorRequired,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
