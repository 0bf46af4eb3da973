package util

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const pbkdf2Iterations = 390000

func hashWithSalt(password, salt string) string {
	derived := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, sha256.Size, sha256.New)
	return hex.EncodeToString(derived)
}

// HashPassword derives a PBKDF2-SHA256 hash and returns it as "salt$digest".
func HashPassword(password string) (string, error) {
	saltBytes := make([]byte, 16)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", err
	}
	salt := hex.EncodeToString(saltBytes)
	return salt + "$" + hashWithSalt(password, salt), nil
}

// VerifyPassword checks a candidate password against a stored "salt$digest".
func VerifyPassword(password, storedHash string) bool {
	salt, digest, ok := strings.Cut(storedHash, "$")
	if !ok {
		return false
	}
	candidate := hashWithSalt(password, salt)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(digest)) == 1
}
