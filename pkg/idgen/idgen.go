// Package idgen generates short URL-safe request ids backed by nanoid.
package idgen

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// Alphabet is the character set of the random portion.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Length is the number of random characters after the prefix.
const Length = 12

// RequestPrefix marks ids attached to HTTP requests.
const RequestPrefix = "req-"

// GenerateWithPrefix returns prefix followed by Length random characters.
func GenerateWithPrefix(prefix string) (string, error) {
	id, err := nanoid.Generate(Alphabet, Length)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return prefix + id, nil
}

// RequestID is an echo RequestIDConfig.Generator. nanoid only fails when the
// system random source does, in which case the id is left blank.
func RequestID() string {
	id, err := GenerateWithPrefix(RequestPrefix)
	if err != nil {
		return ""
	}
	return id
}
