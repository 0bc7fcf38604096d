package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jwtutil "invita/app/jwt"
	"invita/global"

	"github.com/rs/zerolog"
)

func init() {
	global.Logger = zerolog.Nop()
}

func newGate() (*Auth, *jwtutil.Signer) {
	signer := &jwtutil.Signer{Secret: []byte("test-secret"), Issuer: "invita", ExpMin: 60}
	return &Auth{Signer: signer}, signer
}

func okHandler(t *testing.T, wantUser uint) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetClaims(r.Context())
		if claims == nil {
			t.Fatalf("claims missing from context")
		}
		if wantUser != 0 && claims.UserID != wantUser {
			t.Fatalf("unexpected user id %d", claims.UserID)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func do(h http.Handler, method, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth_MissingToken(t *testing.T) {
	gate, _ := newGate()
	rec := do(gate.RequireAuth(okHandler(t, 0)), http.MethodGet, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "token no proporcionado") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRequireAuth_GarbageToken(t *testing.T) {
	gate, _ := newGate()
	rec := do(gate.RequireAuth(okHandler(t, 0)), http.MethodGet, "garbage")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	gate, _ := newGate()
	expired := &jwtutil.Signer{Secret: []byte("test-secret"), Issuer: "invita", ExpMin: -1}
	tok, err := expired.Sign(7, "maria", 2)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}
	rec := do(gate.RequireAuth(okHandler(t, 0)), http.MethodGet, tok)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	// Same external status as a missing token, different body.
	if !strings.Contains(rec.Body.String(), "token inválido o expirado") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRequireAuth_Valid(t *testing.T) {
	gate, signer := newGate()
	tok, err := signer.Sign(7, "maria", 2)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}
	rec := do(gate.RequireAuth(okHandler(t, 7)), http.MethodGet, tok)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRequireAdmin_WrongRole(t *testing.T) {
	gate, signer := newGate()
	tok, err := signer.Sign(7, "maria", 2)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}
	rec := do(gate.RequireAdmin(okHandler(t, 0)), http.MethodGet, tok)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestRequireAdmin_Admin(t *testing.T) {
	gate, signer := newGate()
	tok, err := signer.Sign(1, "admin", 1)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}
	rec := do(gate.RequireAdmin(okHandler(t, 1)), http.MethodGet, tok)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRequireAdmin_InvalidTokenIs401(t *testing.T) {
	gate, _ := newGate()
	rec := do(gate.RequireAdmin(okHandler(t, 0)), http.MethodGet, "garbage")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAdminWrite(t *testing.T) {
	gate, signer := newGate()
	user, err := signer.Sign(7, "maria", 2)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}
	admin, err := signer.Sign(1, "admin", 1)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	h := gate.RequireAdminWrite(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	if rec := do(h, http.MethodGet, user); rec.Code != http.StatusOK {
		t.Fatalf("user GET = %d, want 200", rec.Code)
	}
	if rec := do(h, http.MethodHead, user); rec.Code != http.StatusOK {
		t.Fatalf("user HEAD = %d, want 200", rec.Code)
	}
	if rec := do(h, http.MethodPost, user); rec.Code != http.StatusForbidden {
		t.Fatalf("user POST = %d, want 403", rec.Code)
	}
	if rec := do(h, http.MethodDelete, user); rec.Code != http.StatusForbidden {
		t.Fatalf("user DELETE = %d, want 403", rec.Code)
	}
	if rec := do(h, http.MethodPost, admin); rec.Code != http.StatusOK {
		t.Fatalf("admin POST = %d, want 200", rec.Code)
	}
}
