package handlers

import (
	"github.com/m-alharbi/aqarbook/libs/auth"
)

type TokenSigner interface {
	Sign(claims auth.Claims) (string, error)
	Verify(token string) (*auth.Claims, error)
}

type hs256Signer struct {
	secret string
}

func NewHS256Signer(secret string) TokenSigner {
	return &hs256Signer{secret: secret}
}

func (s *hs256Signer) Sign(claims auth.Claims) (string, error) {
	return auth.SignHS256(claims, s.secret)
}

func (s *hs256Signer) Verify(token string) (*auth.Claims, error) {
	return auth.ParseAndVerifyHS256(token, s.secret)
}
