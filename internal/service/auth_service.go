package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
)

// ErrInvalidCredentials is returned for any login failure, whether the
// email is unknown or the password is wrong, so callers cannot tell which
// part was rejected.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles credential hashing and verification.
type AuthService struct{}

// NewAuthService creates a new AuthService.
func NewAuthService() *AuthService {
	return &AuthService{}
}

// HashPassword returns the hex SHA-256 digest of the password.
// Deterministic and unsalted: stored credentials are plain digests and
// login compares them exactly, so the scheme cannot change without
// invalidating every existing hash.
func (s *AuthService) HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CheckPassword compares a stored digest against the digest of the
// submitted password. Returns ErrInvalidCredentials on mismatch.
func (s *AuthService) CheckPassword(hash, password string) error {
	digest := s.HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(hash), []byte(digest)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}
