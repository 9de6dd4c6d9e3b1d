package auth

import (
	"errors"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "correct horse battery" {
		t.Fatal("hash equals plaintext")
	}

	if err := CheckPassword(hash, "correct horse battery"); err != nil {
		t.Errorf("check with right password: %v", err)
	}
	if err := CheckPassword(hash, "wrong password"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("check with wrong password = %v, want ErrUnauthorized", err)
	}
}

func TestHashPassword_TooShort(t *testing.T) {
	if _, err := HashPassword("short"); err == nil {
		t.Error("expected error for short password")
	}
}
