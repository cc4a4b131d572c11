package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"clubelect-backend/internal/domain"
	"clubelect-backend/internal/security"
)

func authedRequest(t *testing.T, tm security.TokenManager, path string, roles ...domain.Role) *http.Request {
	t.Helper()
	token, err := tm.GenerateAccessToken(7, "alice@example.com", roles)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAuthMiddleware(t *testing.T) {
	tm := security.NewTokenManager("test-secret", time.Hour)
	var seen *security.Principal
	handler := AuthMiddleware(tm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = PrincipalFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("ProtectedWithoutTokenRedirects", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/me?tab=settings", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		var body map[string]string
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "/api/me?tab=settings", body["redirect_to"])
	})

	t.Run("ProtectedWithWrongRole", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, authedRequest(t, tm, "/api/events/complete/5", domain.RoleUser))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("CandidateSatisfiesUserFloor", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, authedRequest(t, tm, "/api/votes", domain.RoleCandidate))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotNil(t, seen)
		assert.Equal(t, int32(7), seen.UserID)
	})

	t.Run("AdminRouteWithAdminRole", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, authedRequest(t, tm, "/api/events/complete/5", domain.RoleAdmin))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("PublicRouteWithoutToken", func(t *testing.T) {
		seen = &security.Principal{}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/clubs", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, seen)
	})

	t.Run("InvalidTokenRejectedEvenOnPublicRoute", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/clubs", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestWriteDomainError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"Unauthenticated", domain.Unauthenticated("no session"), http.StatusUnauthorized},
		{"Forbidden", domain.Forbidden("admins only"), http.StatusForbidden},
		{"NotFound", domain.NotFound("gone"), http.StatusNotFound},
		{"InvalidInput", domain.InvalidInput("bad field"), http.StatusBadRequest},
		{"Conflict", domain.Conflict("already voted"), http.StatusConflict},
		{"PreconditionFailed", domain.PreconditionFailed("window closed"), http.StatusUnprocessableEntity},
		{"Unknown", assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteDomainError(rec, tt.err)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
