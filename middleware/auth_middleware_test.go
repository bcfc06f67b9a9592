package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// stubValidator returns fixed claims or a fixed error
type stubValidator struct {
	claims *Claims
	err    error
}

func (s *stubValidator) ValidateToken(context.Context, string) (*Claims, error) {
	return s.claims, s.err
}

func TestRequireAuth(t *testing.T) {
	logger := zap.NewNop()

	t.Run("missing header returns 401", func(t *testing.T) {
		m := NewAuthMiddleware(&stubValidator{claims: &Claims{Sub: "ops"}}, logger)

		called := false
		handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, called)
	})

	t.Run("malformed header returns 401", func(t *testing.T) {
		m := NewAuthMiddleware(&stubValidator{claims: &Claims{Sub: "ops"}}, logger)

		handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
		req.Header.Set("Authorization", "Basic abc123")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token returns 401", func(t *testing.T) {
		m := NewAuthMiddleware(&stubValidator{err: assert.AnError}, logger)

		handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token passes claims to handler", func(t *testing.T) {
		m := NewAuthMiddleware(&stubValidator{claims: &Claims{Sub: "ops"}}, logger)

		var got *Claims
		handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = GetClaimsFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotNil(t, got)
		assert.Equal(t, "ops", got.Sub)
	})
}

func TestGetClaimsFromContext(t *testing.T) {
	t.Run("empty context returns nil", func(t *testing.T) {
		assert.Nil(t, GetClaimsFromContext(context.Background()))
	})

	t.Run("round trip", func(t *testing.T) {
		claims := &Claims{Sub: "ops"}
		ctx := WithClaims(context.Background(), claims)
		assert.Same(t, claims, GetClaimsFromContext(ctx))
	})
}
