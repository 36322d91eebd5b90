package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/fleetcover/quote-service/internal/dtos"
	"github.com/fleetcover/quote-service/internal/services"
	"github.com/fleetcover/quote-service/internal/utils"
)

type ContactController struct {
	svc services.ContactService
}

func NewContactController(svc services.ContactService) *ContactController {
	return &ContactController{svc: svc}
}

func respondValidationError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation,
			"One or more fields failed validation", formatValidationErrors(validationErrs),
		)
		return
	}
	utils.RespondErrorWithCode(
		w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err,
	)
}

// -----------------------------------------------------------------------------
// POST /api/contact
// -----------------------------------------------------------------------------
func (c *ContactController) SubmitContactMessage(w http.ResponseWriter, r *http.Request) {
	var req dtos.ContactMessageRequest
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

	if _, err := c.svc.SubmitContactMessage(r.Context(), req); err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.ContactMessageResponse{
		Success: true,
		Message: "Thanks for reaching out — we'll be in touch shortly.",
	})
}

// -----------------------------------------------------------------------------
// GET /api/contact  (staff)
// -----------------------------------------------------------------------------
func (c *ContactController) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := c.svc.ListContactMessages(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ContactListResponse{
		Success:  true,
		Messages: messages,
	})
}

// -----------------------------------------------------------------------------
// POST /api/service-requests
// -----------------------------------------------------------------------------
func (c *ContactController) SubmitServiceRequest(w http.ResponseWriter, r *http.Request) {
	var req dtos.ServiceRequestRequest
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

	if _, err := c.svc.SubmitServiceRequest(r.Context(), req); err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.ServiceRequestResponse{
		Success: true,
		Message: "Your service request has been received.",
	})
}

// -----------------------------------------------------------------------------
// GET /api/service-requests  (staff)
// -----------------------------------------------------------------------------
func (c *ContactController) ListServiceRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := c.svc.ListServiceRequests(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ServiceRequestListResponse{
		Success:  true,
		Requests: requests,
	})
}
