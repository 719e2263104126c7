// Package auth provides password hashing and verification for account
// credentials. Hashes are self-describing strings so the key derivation
// parameters can be raised later without invalidating stored hashes.
package auth

import (
	"crypto/pbkdf2"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	hashScheme     = "pbkdf2-sha256"
	hashIterations = 210000
	saltLen        = 16
	keyLen         = 32
)

var ErrMalformedHash = errors.New("auth: malformed password hash")

// HashPassword derives a salted hash of the given password, encoded as
// "pbkdf2-sha256$<iterations>$<salt>$<key>" with base64 salt and key.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key, err := pbkdf2.Key(sha256.New, password, salt, hashIterations, keyLen)
	if err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}

	enc := base64.RawStdEncoding
	return strings.Join([]string{
		hashScheme,
		strconv.Itoa(hashIterations),
		enc.EncodeToString(salt),
		enc.EncodeToString(key),
	}, "$"), nil
}

// VerifyPassword reports whether the password matches the encoded hash.
func VerifyPassword(encoded, password string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 4 || parts[0] != hashScheme {
		return false, ErrMalformedHash
	}

	iter, err := strconv.Atoi(parts[1])
	if err != nil || iter <= 0 {
		return false, ErrMalformedHash
	}

	enc := base64.RawStdEncoding
	salt, err := enc.DecodeString(parts[2])
	if err != nil {
		return false, ErrMalformedHash
	}
	want, err := enc.DecodeString(parts[3])
	if err != nil {
		return false, ErrMalformedHash
	}

	got, err := pbkdf2.Key(sha256.New, password, salt, iter, len(want))
	if err != nil {
		return false, fmt.Errorf("derive key: %w", err)
	}
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
