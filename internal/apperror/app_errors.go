package apperror

import "errors"

var (
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrGameNotFound    = errors.New("game not found")
	ErrProfileNotFound = errors.New("profile not found")
)

// Name errors are shown to players as is.
var (
	ErrNameRequired     = errors.New("both player names are required")
	ErrNamesNotDistinct = errors.New("players must have different names")
	ErrNameTooShort     = errors.New("names must be at least 2 characters long")
	ErrNameTooLong      = errors.New("names must be less than 15 characters")
)

func IsNameError(err error) bool {
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrNamesNotDistinct) ||
		errors.Is(err, ErrNameTooShort) ||
		errors.Is(err, ErrNameTooLong)
}
