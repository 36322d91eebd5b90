package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/fleetcover/quote-service/internal/utils"
)

const testSecret = "middleware-test-secret"

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func protectedHandler(t *testing.T, gotPrincipal *string) http.Handler {
	t.Helper()
	return AdminAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := r.Context().Value(ContextKeyPrincipalID).(string); ok {
			*gotPrincipal = id
		}
		w.WriteHeader(http.StatusOK)
	}))
}

func doRequest(handler http.Handler, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAdminAuthMissingCookie(t *testing.T) {
	var principal string
	rec := doRequest(protectedHandler(t, &principal), nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, utils.ErrCodeUnauthorized, resp.Code)
}

func TestAdminAuthValidSession(t *testing.T) {
	var principal string
	token := signedToken(t, testSecret, jwt.MapClaims{
		"sub":  "root",
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	rec := doRequest(protectedHandler(t, &principal), &http.Cookie{Name: AdminTokenCookie, Value: token})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "root", principal)
}

func TestAdminAuthExpiredToken(t *testing.T) {
	var principal string
	token := signedToken(t, testSecret, jwt.MapClaims{
		"sub":  "root",
		"role": "admin",
		"iat":  time.Now().Add(-2 * time.Hour).Unix(),
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})

	rec := doRequest(protectedHandler(t, &principal), &http.Cookie{Name: AdminTokenCookie, Value: token})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, utils.ErrCodeTokenExpired, resp.Code)
}

func TestAdminAuthWrongSecret(t *testing.T) {
	var principal string
	token := signedToken(t, "some-other-secret", jwt.MapClaims{
		"sub":  "root",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	rec := doRequest(protectedHandler(t, &principal), &http.Cookie{Name: AdminTokenCookie, Value: token})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuthWrongRole(t *testing.T) {
	var principal string
	token := signedToken(t, testSecret, jwt.MapClaims{
		"sub":  "someone",
		"role": "viewer",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	rec := doRequest(protectedHandler(t, &principal), &http.Cookie{Name: AdminTokenCookie, Value: token})
	require.Equal(t, http.StatusForbidden, rec.Code)

	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, utils.ErrCodeForbidden, resp.Code)
	require.Empty(t, principal)
}

func TestAdminAuthGarbageToken(t *testing.T) {
	var principal string
	rec := doRequest(protectedHandler(t, &principal), &http.Cookie{Name: AdminTokenCookie, Value: "not.a.jwt"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
