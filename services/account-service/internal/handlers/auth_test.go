package handlers

import (
	"testing"

	"github.com/m-alharbi/aqarbook/services/account-service/internal/storage"
)

func TestPasswordHashing(t *testing.T) {
	password := "pass123"
	hash, err := hashPassword(password)
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	if hash == "" {
		t.Fatal("expected non-empty hash")
	}
	if err := verifyPassword(hash, password); err != nil {
		t.Fatalf("verifyPassword should succeed: %v", err)
	}
	if err := verifyPassword(hash, "wrong-pass"); err == nil {
		t.Fatal("verifyPassword should fail for wrong password")
	}
}

func TestNewRefreshTokenIsUnique(t *testing.T) {
	a, err := newRefreshToken()
	if err != nil {
		t.Fatalf("newRefreshToken failed: %v", err)
	}
	b, err := newRefreshToken()
	if err != nil {
		t.Fatalf("newRefreshToken failed: %v", err)
	}
	if len(a) != 64 {
		t.Fatalf("token length = %d, want 64", len(a))
	}
	if a == b {
		t.Fatal("tokens should not repeat")
	}
}

func TestIssueJWTRoundTrip(t *testing.T) {
	signer := NewHS256Signer("test-secret")
	user := storage.User{ID: "u-1", Role: "owner", Locale: "ar"}

	token, err := issueJWT(user, signer)
	if err != nil {
		t.Fatalf("issueJWT failed: %v", err)
	}
	claims, err := signer.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.Sub != "u-1" || claims.Role != "owner" || claims.Locale != "ar" {
		t.Fatalf("claims = %+v", claims)
	}
}
