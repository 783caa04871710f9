// Package password hashes and verifies admin credentials with bcrypt.
//
// bcrypt is the only recognized format: verification fails closed on any
// hash that is not a well-formed bcrypt string, including hashes produced
// by other algorithms.
package password

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Standard bcrypt output: 4-char version prefix, 60 characters total.
const hashLength = 60

var knownPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// Hash derives a bcrypt hash of password with a fresh random salt.
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. Malformed or
// foreign-format hashes fail verification; Verify never panics and
// never returns an error to the caller.
func Verify(hash, password string) bool {
	if !IsHashFormat(hash) {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsHashFormat reports whether s is shaped like a bcrypt hash this
// package could have issued.
func IsHashFormat(s string) bool {
	if len(s) != hashLength {
		return false
	}
	for _, prefix := range knownPrefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
