package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("failed to hash password: %s", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("expected an argon2id encoding, got %s", hash)
	}

	ok, err := ValidatePassword("correct horse battery staple", hash)
	if err != nil {
		t.Fatalf("failed to validate password: %s", err)
	}
	if !ok {
		t.Error("expected the original password to validate against its own hash")
	}

	ok, err = ValidatePassword("incorrect horse", hash)
	if err != nil {
		t.Fatalf("a mismatch should not be an error, got %s", err)
	}
	if ok {
		t.Error("expected a different password to fail validation")
	}
}

func TestHashPasswordSaltsPerCall(t *testing.T) {
	first, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("failed to hash password: %s", err)
	}
	second, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("failed to hash password: %s", err)
	}
	if first == second {
		t.Error("expected two hashes of the same password to differ")
	}
	for _, hash := range []string{first, second} {
		ok, err := ValidatePassword("hunter2hunter2", hash)
		if err != nil || !ok {
			t.Errorf("expected hash[%s] to validate independently (ok: %v, err: %s)", hash, ok, err)
		}
	}
}

func TestHashPasswordEmpty(t *testing.T) {
	if _, err := HashPassword(""); !errors.Is(err, ErrorPasswordMissing) {
		t.Errorf("expected ErrorPasswordMissing, got %s", err)
	}
}

func TestValidatePasswordMalformedHash(t *testing.T) {
	malformedHashes := []string{
		"",
		"not-a-hash",
		"$argon2id$v=19$m=65536,t=3,p=4$tooFewParts",
		"$bcrypt$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=x,t=y,p=z$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=4$!!!$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$!!!",
	}
	for _, malformedHash := range malformedHashes {
		if _, err := ValidatePassword("anything", malformedHash); !errors.Is(err, ErrorHashFormat) {
			t.Errorf("expected ErrorHashFormat for hash[%s], got %v", malformedHash, err)
		}
	}
}
