package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/fleetcover/quote-service/internal/dtos"
	"github.com/fleetcover/quote-service/internal/middleware"
	"github.com/fleetcover/quote-service/internal/services"
	"github.com/fleetcover/quote-service/internal/utils"
)

type AdminAuthController struct {
	svc services.AdminAuthService
}

func NewAdminAuthController(svc services.AdminAuthService) *AdminAuthController {
	return &AdminAuthController{svc: svc}
}

// -----------------------------------------------------------------------------
// POST /api/admin/login
// -----------------------------------------------------------------------------
func (c *AdminAuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	token, principal, err := c.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AdminTokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.RespondWithJSON(w, http.StatusOK, dtos.AdminLoginResponse{
		Success: true,
		Role:    principal.Role,
		ID:      principal.ID,
	})
}

// -----------------------------------------------------------------------------
// POST /api/admin/logout
// -----------------------------------------------------------------------------
func (c *AdminAuthController) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AdminTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	utils.RespondWithJSON(w, http.StatusOK, dtos.AdminLogoutResponse{Success: true})
}

// -----------------------------------------------------------------------------
// GET /api/admin/status  (staff; middleware already validated the session)
// -----------------------------------------------------------------------------
func (c *AdminAuthController) Status(w http.ResponseWriter, r *http.Request) {
	id, _ := r.Context().Value(middleware.ContextKeyPrincipalID).(string)
	utils.RespondWithJSON(w, http.StatusOK, dtos.AdminStatusResponse{
		Success:       true,
		Authenticated: true,
		Role:          services.RoleAdmin,
		ID:            id,
	})
}
