package pkg

import "github.com/google/uuid"

// GenerateMatchID - generates a new unique match ID.
func GenerateMatchID() string {
	return uuid.NewString()
}

// GenerateNewSessionID - generates a new unique player session ID.
func GenerateNewSessionID() string {
	return uuid.NewString()
}
