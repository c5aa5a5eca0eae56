package pkg

import (
	"crypto/rand"
	"fmt"
)

const (
	gameIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	gameIDLength   = 8
)

// GenerateGameID - generates a short url-safe identifier for a game session.
func GenerateGameID() (string, error) {
	buf := make([]byte, gameIDLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	for i := range buf {
		buf[i] = gameIDAlphabet[int(buf[i])%len(gameIDAlphabet)]
	}

	return string(buf), nil
}
