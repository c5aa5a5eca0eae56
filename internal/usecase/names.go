package usecase

import (
	"strings"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-threemark/internal/apperror"
)

const (
	minNameLength = 2
	maxNameLength = 15
)

// ValidatePlayerNames - trims both names and checks them in the order the name form reports problems.
func ValidatePlayerNames(player1, player2 string) (string, string, error) {
	player1 = strings.TrimSpace(player1)
	player2 = strings.TrimSpace(player2)

	switch {
	case player1 == "" || player2 == "":
		return "", "", apperror.ErrNameRequired
	case player1 == player2:
		return "", "", apperror.ErrNamesNotDistinct
	case utf8.RuneCountInString(player1) < minNameLength || utf8.RuneCountInString(player2) < minNameLength:
		return "", "", apperror.ErrNameTooShort
	case utf8.RuneCountInString(player1) > maxNameLength || utf8.RuneCountInString(player2) > maxNameLength:
		return "", "", apperror.ErrNameTooLong
	}

	return player1, player2, nil
}
