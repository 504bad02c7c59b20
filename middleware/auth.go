package middleware

import (
	"context"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krisdinakr/belle-catalog/models"
	"github.com/krisdinakr/belle-catalog/utils"
)

// Key type for context
type contextKey string

const UserContextKey = contextKey("user")

// RoleAdmin is the role value granting catalog-management access
const RoleAdmin = 1

// UserContext is the resolved caller attached to authenticated requests
type UserContext struct {
	User        *models.User
	AccessToken string
}

// UserGetter loads a user by id
type UserGetter interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// TokenChecker reports whether an access token has been signed out
type TokenChecker interface {
	IsRevoked(ctx context.Context, accessToken string) (bool, error)
}

// GetAccessTokenFromHeader extracts the bearer token from the Authorization
// header, returning an empty string when absent or malformed
func GetAccessTokenFromHeader(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// AuthContext resolves the caller from the bearer token and attaches a
// UserContext to the request. It never rejects: requests without a valid,
// non-revoked token simply proceed without a user context, and the guards
// decide what that means per route.
func AuthContext(users UserGetter, tokens TokenChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accessToken := GetAccessTokenFromHeader(r)
			if accessToken == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := utils.JwtVerify(accessToken)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := primitive.ObjectIDFromHex(claims.ID)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			revoked, err := tokens.IsRevoked(r.Context(), accessToken)
			if err != nil || revoked {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, &UserContext{
				User:        user,
				AccessToken: accessToken,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the resolved caller, if any
func UserFromContext(ctx context.Context) (*UserContext, bool) {
	user, ok := ctx.Value(UserContextKey).(*UserContext)
	return user, ok
}

// RequireAuth rejects requests that carry no resolved user context
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); !ok {
			utils.RespondError(w, http.StatusNotFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireGuest rejects requests from signed-in callers
func RequireGuest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); ok {
			utils.RespondError(w, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects callers without the admin role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok || user.User.Role != RoleAdmin {
			utils.RespondError(w, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
