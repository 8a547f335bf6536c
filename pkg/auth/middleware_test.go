package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler(t *testing.T, wantUserID int, wantRole string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if wantUserID != 0 {
			id, ok := CallerID(r.Context())
			assert.True(t, ok)
			assert.Equal(t, wantUserID, id)
			role, _ := CallerRole(r.Context())
			assert.Equal(t, wantRole, role)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := &JWTService{}
	validToken, _ := jwtService.GenerateJWT(42, "member", time.Now().Add(time.Hour))

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{
			name:         "Valid token",
			header:       "Bearer " + validToken,
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing header",
			header:       "",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Malformed token",
			header:       "Bearer not.a.token",
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			AuthMiddleware(okHandler(t, 42, "member")).ServeHTTP(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	jwtService := &JWTService{}
	validToken, _ := jwtService.GenerateJWT(7, AdminRole, time.Now().Add(time.Hour))

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{
			name:         "No token passes through anonymously",
			header:       "",
			expectedCode: http.StatusOK,
		},
		{
			name:         "Valid token resolves claims",
			header:       "Bearer " + validToken,
			expectedCode: http.StatusOK,
		},
		{
			name:         "Malformed token is rejected",
			header:       "Bearer not.a.token",
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			OptionalAuthMiddleware(okHandler(t, 0, "")).ServeHTTP(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestAdminOnlyMiddleware(t *testing.T) {
	jwtService := &JWTService{}
	adminToken, _ := jwtService.GenerateJWT(1, AdminRole, time.Now().Add(time.Hour))
	memberToken, _ := jwtService.GenerateJWT(2, "member", time.Now().Add(time.Hour))

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{
			name:         "Admin allowed",
			header:       "Bearer " + adminToken,
			expectedCode: http.StatusOK,
		},
		{
			name:         "Member forbidden",
			header:       "Bearer " + memberToken,
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.Header.Set("Authorization", tt.header)
			w := httptest.NewRecorder()
			AuthMiddleware(AdminOnlyMiddleware(okHandler(t, 0, ""))).ServeHTTP(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
