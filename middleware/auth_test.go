package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krisdinakr/belle-catalog/models"
	"github.com/krisdinakr/belle-catalog/utils"
)

type stubUserGetter struct {
	user *models.User
	err  error
}

func (s *stubUserGetter) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.user, s.err
}

type stubTokenChecker struct {
	revoked bool
	err     error
}

func (s *stubTokenChecker) IsRevoked(ctx context.Context, accessToken string) (bool, error) {
	return s.revoked, s.err
}

func captureUser(t *testing.T) (http.Handler, func() (*UserContext, bool)) {
	t.Helper()
	var got *UserContext
	var ok bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return handler, func() (*UserContext, bool) { return got, ok }
}

func TestAuthContextAttachesUser(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), FirstName: "Dina"}
	token, err := utils.JwtSign(user.ID)
	require.NoError(t, err)

	handler, result := captureUser(t)
	mw := AuthContext(&stubUserGetter{user: user}, &stubTokenChecker{})(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	mw.ServeHTTP(httptest.NewRecorder(), req)

	got, ok := result()
	require.True(t, ok)
	assert.Equal(t, user, got.User)
	assert.Equal(t, token, got.AccessToken)
}

func TestAuthContextSkipsMissingOrBadToken(t *testing.T) {
	handler, result := captureUser(t)
	mw := AuthContext(&stubUserGetter{}, &stubTokenChecker{})(handler)

	headers := []string{"", "Bearer not-a-jwt", "Basic abc"}
	for _, header := range headers {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		mw.ServeHTTP(httptest.NewRecorder(), req)

		_, ok := result()
		assert.False(t, ok, "header %q", header)
	}
}

func TestAuthContextSkipsRevokedToken(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID()}
	token, err := utils.JwtSign(user.ID)
	require.NoError(t, err)

	handler, result := captureUser(t)
	mw := AuthContext(&stubUserGetter{user: user}, &stubTokenChecker{revoked: true})(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	mw.ServeHTTP(httptest.NewRecorder(), req)

	_, ok := result()
	assert.False(t, ok)
}

func TestAuthContextSkipsUnknownUser(t *testing.T) {
	token, err := utils.JwtSign(primitive.NewObjectID())
	require.NoError(t, err)

	handler, result := captureUser(t)
	mw := AuthContext(&stubUserGetter{err: errors.New("not found")}, &stubTokenChecker{})(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	mw.ServeHTTP(httptest.NewRecorder(), req)

	_, ok := result()
	assert.False(t, ok)
}

func TestRequireAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	RequireAuth(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/me", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	ctx := context.WithValue(req.Context(), UserContextKey, &UserContext{User: &models.User{}})
	rec = httptest.NewRecorder()
	RequireAuth(next).ServeHTTP(rec, req.WithContext(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireGuest(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	RequireGuest(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/sign-in", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-in", nil)
	ctx := context.WithValue(req.Context(), UserContextKey, &UserContext{User: &models.User{}})
	rec = httptest.NewRecorder()
	RequireGuest(next).ServeHTTP(rec, req.WithContext(ctx))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	cases := []struct {
		name       string
		user       *UserContext
		wantStatus int
	}{
		{"anonymous", nil, http.StatusForbidden},
		{"regular user", &UserContext{User: &models.User{Role: 0}}, http.StatusForbidden},
		{"admin", &UserContext{User: &models.User{Role: RoleAdmin}}, http.StatusOK},
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/brands", nil)
		if c.user != nil {
			req = req.WithContext(context.WithValue(req.Context(), UserContextKey, c.user))
		}
		rec := httptest.NewRecorder()
		RequireAdmin(next).ServeHTTP(rec, req)
		assert.Equal(t, c.wantStatus, rec.Code, c.name)
	}
}
