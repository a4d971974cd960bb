package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, key []byte, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString(key)
	require.NoError(t, err)
	return s
}

func TestParseToken(t *testing.T) {
	env := &Authenv{JWTkey: []byte("test-key")}

	t.Run("valid token", func(t *testing.T) {
		s := signToken(t, env.JWTkey, jwt.MapClaims{
			"user_id": 42,
			"login":   "engineer",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		id, login, ok := env.parseToken(s)
		require.True(t, ok)
		assert.Equal(t, 42, id)
		assert.Equal(t, "engineer", login)
	})

	t.Run("expired token", func(t *testing.T) {
		s := signToken(t, env.JWTkey, jwt.MapClaims{
			"user_id": 42,
			"login":   "engineer",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})
		_, _, ok := env.parseToken(s)
		assert.False(t, ok)
	})

	t.Run("wrong key", func(t *testing.T) {
		s := signToken(t, []byte("other-key"), jwt.MapClaims{
			"user_id": 42,
			"login":   "engineer",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		_, _, ok := env.parseToken(s)
		assert.False(t, ok)
	})

	t.Run("missing login claim", func(t *testing.T) {
		s := signToken(t, env.JWTkey, jwt.MapClaims{
			"user_id": 42,
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		_, _, ok := env.parseToken(s)
		assert.False(t, ok)
	})
}

func TestAuthMiddleware_SetsContext(t *testing.T) {
	env := &Authenv{JWTkey: []byte("test-key")}
	s := signToken(t, env.JWTkey, jwt.MapClaims{
		"user_id": 7,
		"login":   "engineer",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	var gotID int
	var gotLogin string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = UserIDFromContext(r.Context())
		gotLogin, _ = LoginFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: s})
	rec := httptest.NewRecorder()
	env.AuthMiddleware(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, gotID)
	assert.Equal(t, "engineer", gotLogin)
}

func TestAuthMiddleware_RedirectsWithoutCookie(t *testing.T) {
	env := &Authenv{JWTkey: []byte("test-key")}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	env.AuthMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestLimitMiddleware(t *testing.T) {
	limiter := NewIPRateLimiter(1, 2)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := limiter.LimitMiddleware(next)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	// Burst of 2, then throttled.
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// A different address has its own limiter.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
