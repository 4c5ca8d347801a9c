// Package auth implements credential hashing for author accounts.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt cost parameters. Memory-hard on purpose; a fast general-purpose
// hash would make offline brute-forcing cheap.
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	keyLen       = 64
	saltLen      = 16
	hashSegments = 2
)

// ErrMalformedHash is returned when a stored hash is not in the expected
// "hash.salt" layout. This indicates corrupted credential storage and is
// treated as a configuration error by callers, never as a failed match.
var ErrMalformedHash = errors.New("auth: malformed password hash")

// HashPassword derives a salted scrypt hash of the plaintext and encodes
// it together with its salt as "hexhash.hexsalt".
func HashPassword(password string) (string, error) {
	raw := make([]byte, saltLen)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("auth: generate salt: %w", err)
	}
	salt := hex.EncodeToString(raw)

	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return "", fmt.Errorf("auth: derive key: %w", err)
	}
	return hex.EncodeToString(key) + "." + salt, nil
}

// VerifyPassword recomputes the hash of the supplied plaintext using the
// salt embedded in encoded and compares in constant time.
func VerifyPassword(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, ".")
	if len(parts) != hashSegments {
		return false, ErrMalformedHash
	}

	stored, err := hex.DecodeString(parts[0])
	if err != nil {
		return false, ErrMalformedHash
	}

	key, err := scrypt.Key([]byte(password), []byte(parts[1]), scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return false, fmt.Errorf("auth: derive key: %w", err)
	}

	return subtle.ConstantTimeCompare(stored, key) == 1, nil
}
