package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/employee"
	"github.com/ikaze-hr/leave-backend-go/internal/pkg/jwt"
)

func newProtectedRouter(t *testing.T, jwtService jwt.Service, guards ...func(http.Handler) http.Handler) *chi.Mux {
	t.Helper()

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(AuthRequired(jwtService.JWTAuth()))
		for _, guard := range guards {
			r.Use(guard)
		}
		r.Get("/protected", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	return r
}

func doGet(router *chi.Mux, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired_AccessToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	router := newProtectedRouter(t, jwtService)

	token, _, err := jwtService.GenerateAccessToken("emp-1", "jean@example.bi", employee.RoleEmployee)
	require.NoError(t, err)

	rec := doGet(router, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequired_MissingToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	router := newProtectedRouter(t, jwtService)

	rec := doGet(router, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_RefreshTokenRejected(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	router := newProtectedRouter(t, jwtService)

	refresh, _, err := jwtService.GenerateRefreshToken("emp-1")
	require.NoError(t, err)

	rec := doGet(router, refresh)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "refresh tokens must not grant API access")
}

func TestRequireHR(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	router := newProtectedRouter(t, jwtService, RequireHR)

	cases := []struct {
		role employee.Role
		want int
	}{
		{employee.RoleEmployee, http.StatusForbidden},
		{employee.RoleManager, http.StatusForbidden},
		{employee.RoleHR, http.StatusOK},
		{employee.RoleAdmin, http.StatusOK},
	}
	for _, tc := range cases {
		token, _, err := jwtService.GenerateAccessToken("emp-1", "jean@example.bi", tc.role)
		require.NoError(t, err)

		rec := doGet(router, token)
		assert.Equal(t, tc.want, rec.Code, "role %s", tc.role)
	}
}

func TestRequireReviewer(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	router := newProtectedRouter(t, jwtService, RequireReviewer)

	cases := []struct {
		role employee.Role
		want int
	}{
		{employee.RoleEmployee, http.StatusForbidden},
		{employee.RoleSecretary, http.StatusForbidden},
		{employee.RoleManager, http.StatusOK},
		{employee.RoleHR, http.StatusOK},
		{employee.RoleAdmin, http.StatusOK},
	}
	for _, tc := range cases {
		token, _, err := jwtService.GenerateAccessToken("emp-1", "jean@example.bi", tc.role)
		require.NoError(t, err)

		rec := doGet(router, token)
		assert.Equal(t, tc.want, rec.Code, "role %s", tc.role)
	}
}
