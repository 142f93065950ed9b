package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Prajwal-sudo-600/AEGIS/pkg/jwt"
)

type contextKey string

const userIDKey contextKey = "userID"

// Identity is the resolved current user for a request.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// Require enforces authentication. The token comes from the Authorization
// bearer header or the "token" cookie; an invalid or missing token ends the
// request with 401.
func Require(manager *jwt.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := resolve(r, manager)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthenticated","message":"valid authentication required"}`))
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Optional resolves the current user when a valid token is present but never
// blocks the request. Read paths use it for personalization.
func Optional(manager *jwt.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if identity, err := resolve(r, manager); err == nil {
				ctx := context.WithValue(r.Context(), userIDKey, identity)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CurrentUser returns the resolved identity, or false for anonymous requests.
func CurrentUser(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(userIDKey).(Identity)
	return identity, ok
}

// UserID returns the current user's ID pointer, nil for anonymous requests.
func UserID(ctx context.Context) *uuid.UUID {
	identity, ok := CurrentUser(ctx)
	if !ok {
		return nil
	}
	id := identity.UserID
	return &id
}

func resolve(r *http.Request, manager *jwt.Manager) (Identity, error) {
	token := ""

	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		token = strings.TrimPrefix(header, "Bearer ")
	} else if cookie, err := r.Cookie("token"); err == nil {
		token = cookie.Value
	}

	if token == "" {
		return Identity{}, http.ErrNoCookie
	}

	claims, err := manager.Verify(token)
	if err != nil {
		return Identity{}, err
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return Identity{}, err
	}

	return Identity{UserID: userID, Email: claims.Email}, nil
}
