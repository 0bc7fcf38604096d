package jwtutil

import (
	"errors"
	"strings"
	"testing"
)

func newSigner(expMin int) *Signer {
	return &Signer{Secret: []byte("super-secret"), Issuer: "invita", ExpMin: expMin}
}

func TestSignAndParse_Success(t *testing.T) {
	t.Parallel()

	s := newSigner(60)
	tok, err := s.Sign(42, "maria", 2)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	claims, err := s.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "maria" || claims.RoleID != 2 {
		t.Fatalf("claims mismatch: got %+v", claims)
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	s := newSigner(-1)
	tok, err := s.Sign(1, "admin", 1)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	_, err = s.Parse(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	s := newSigner(60)
	tok, err := s.Sign(1, "admin", 1)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	other := &Signer{Secret: []byte("other-secret"), Issuer: "invita", ExpMin: 60}
	_, err = other.Parse(tok)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParse_TamperedPayload(t *testing.T) {
	t.Parallel()

	s := newSigner(60)
	tok, err := s.Sign(1, "admin", 1)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", tok)
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := s.Parse(tampered); err == nil {
		t.Fatalf("expected error for tampered token, got nil")
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	s := newSigner(60)
	if _, err := s.Parse("not.a.jwt"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
