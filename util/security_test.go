package util

import (
	"strings"
	"testing"
)

func TestHashPasswordFormat(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatal(err)
	}
	salt, digest, ok := strings.Cut(hash, "$")
	if !ok {
		t.Fatalf("expected salt$digest, got %q", hash)
	}
	if len(salt) != 32 {
		t.Errorf("expected 16-byte hex salt, got %d chars", len(salt))
	}
	if len(digest) != 64 {
		t.Errorf("expected sha256 hex digest, got %d chars", len(digest))
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatal(err)
	}
	if !VerifyPassword("s3cret", hash) {
		t.Error("correct password rejected")
	}
	if VerifyPassword("wrong", hash) {
		t.Error("wrong password accepted")
	}
	if VerifyPassword("s3cret", "not-a-stored-hash") {
		t.Error("malformed stored hash accepted")
	}
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	first, err := HashPassword("s3cret")
	if err != nil {
		t.Fatal(err)
	}
	second, err := HashPassword("s3cret")
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("two hashes of the same password should use different salts")
	}
}
