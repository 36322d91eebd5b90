package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/fleetcover/quote-service/internal/config"
	"github.com/fleetcover/quote-service/internal/middleware"
	"github.com/fleetcover/quote-service/internal/routes"
	"github.com/fleetcover/quote-service/internal/services"
)

// The super-admin path never touches the repository, so a nil repo is fine
// for these tests.
func newAdminRouter() *mux.Router {
	cfg := &config.Config{
		AdminPassword: "hunter2-but-long",
		SessionSecret: testSessionSecret,
	}
	svc := services.NewAdminAuthService(cfg, nil)
	ctrl := NewAdminAuthController(svc)
	adminOnly := middleware.AdminAuth(cfg.SessionSecret)

	r := mux.NewRouter()
	r.HandleFunc(routes.AdminLogin, ctrl.Login).Methods(http.MethodPost)
	r.HandleFunc(routes.AdminLogout, ctrl.Logout).Methods(http.MethodPost)
	r.Handle(routes.AdminStatus, adminOnly(http.HandlerFunc(ctrl.Status))).Methods(http.MethodGet)
	return r
}

func TestAdminLoginSetsSessionCookie(t *testing.T) {
	router := newAdminRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/admin/login", map[string]any{
		"username": "admin",
		"password": "hunter2-but-long",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.AdminTokenCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "login must set the session cookie")
	require.True(t, cookie.HttpOnly)
	require.NotEmpty(t, cookie.Value)

	rec = doJSON(t, router, http.MethodGet, "/api/admin/status", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var status struct {
		Success       bool   `json:"success"`
		Authenticated bool   `json:"authenticated"`
		ID            string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	require.True(t, status.Authenticated)
	require.Equal(t, services.SuperAdminID, status.ID)
}

func TestAdminLoginBadCredentials(t *testing.T) {
	router := newAdminRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/admin/login", map[string]any{
		"username": "admin",
		"password": "wrong-but-plausible",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Empty(t, rec.Result().Cookies())
}

func TestAdminLogoutClearsCookie(t *testing.T) {
	router := newAdminRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/admin/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cleared *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.AdminTokenCookie {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	require.Empty(t, cleared.Value)
	require.Negative(t, cleared.MaxAge)
}

func TestAdminStatusWithoutSession(t *testing.T) {
	router := newAdminRouter()

	rec := doJSON(t, router, http.MethodGet, "/api/admin/status", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
