package auth

import (
	"strings"
	"testing"
	"time"
)

func TestSignAndVerifyHS256(t *testing.T) {
	claims := Claims{
		Sub:    "user-1",
		Role:   "owner",
		Locale: "ar",
		Iat:    time.Now().Unix(),
		Exp:    time.Now().Add(time.Hour).Unix(),
	}

	token, err := SignHS256(claims, "secret")
	if err != nil {
		t.Fatalf("SignHS256 failed: %v", err)
	}

	parsed, err := ParseAndVerifyHS256(token, "secret")
	if err != nil {
		t.Fatalf("ParseAndVerifyHS256 failed: %v", err)
	}
	if parsed.Sub != claims.Sub || parsed.Role != claims.Role || parsed.Locale != claims.Locale {
		t.Fatalf("claims mismatch: %+v", parsed)
	}
}

func TestVerifyHS256_WrongSecret(t *testing.T) {
	token, err := SignHS256(Claims{Sub: "user-1", Exp: time.Now().Add(time.Hour).Unix()}, "secret")
	if err != nil {
		t.Fatalf("SignHS256 failed: %v", err)
	}
	if _, err := ParseAndVerifyHS256(token, "other"); err == nil {
		t.Fatal("expected verification failure with wrong secret")
	}
}

func TestVerifyHS256_Expired(t *testing.T) {
	token, err := SignHS256(Claims{Sub: "user-1", Exp: time.Now().Add(-time.Minute).Unix()}, "secret")
	if err != nil {
		t.Fatalf("SignHS256 failed: %v", err)
	}
	if _, err := ParseAndVerifyHS256(token, "secret"); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestVerifyHS256_Tampered(t *testing.T) {
	token, err := SignHS256(Claims{Sub: "user-1", Exp: time.Now().Add(time.Hour).Unix()}, "secret")
	if err != nil {
		t.Fatalf("SignHS256 failed: %v", err)
	}
	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]
	if _, err := ParseAndVerifyHS256(tampered, "secret"); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
}
