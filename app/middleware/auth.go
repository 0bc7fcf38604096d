package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	jwtutil "invita/app/jwt"
	"invita/app/models"
	"invita/global"
)

type ctxKey int

const ClaimsKey ctxKey = 1

type Auth struct{ Signer *jwtutil.Signer }

func reject(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}`))
}

// extract pulls the bearer token out of the Authorization header and
// verifies it. A nil result means the response has already been written.
func (a *Auth) extract(w http.ResponseWriter, r *http.Request) *jwtutil.Claims {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		reject(w, http.StatusUnauthorized, "token no proporcionado")
		return nil
	}
	token := strings.TrimPrefix(authz, "Bearer ")
	claims, err := a.Signer.Parse(token)
	if err != nil {
		if errors.Is(err, jwtutil.ErrTokenExpired) {
			global.Logger.Debug().Str("path", r.URL.Path).Msg("expired token")
		} else {
			global.Logger.Debug().Str("path", r.URL.Path).Msg("invalid token")
		}
		reject(w, http.StatusUnauthorized, "token inválido o expirado")
		return nil
	}
	return claims
}

// RequireAuth forwards any request with a valid token.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := a.extract(w, r)
		if claims == nil {
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin forwards only requests whose token carries the
// administrator role.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := a.extract(w, r)
		if claims == nil {
			return
		}
		if claims.RoleID != models.AdminRoleID {
			reject(w, http.StatusForbidden, "no tienes permiso para acceder a esta ruta")
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdminWrite lets any authenticated user read but reserves
// mutating methods for administrators.
func (a *Auth) RequireAdminWrite(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := a.extract(w, r)
		if claims == nil {
			return
		}
		read := r.Method == http.MethodGet || r.Method == http.MethodHead
		if !read && claims.RoleID != models.AdminRoleID {
			reject(w, http.StatusForbidden, "no tienes permiso para acceder a esta ruta")
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
