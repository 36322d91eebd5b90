package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/fleetcover/quote-service/internal/dtos"
	"github.com/fleetcover/quote-service/internal/models"
	"github.com/fleetcover/quote-service/internal/schema"
	"github.com/fleetcover/quote-service/internal/services"
	"github.com/fleetcover/quote-service/internal/utils"
)

type QuoteController struct {
	svc services.QuoteService
}

func NewQuoteController(svc services.QuoteService) *QuoteController {
	return &QuoteController{svc: svc}
}

// -----------------------------------------------------------------------------
// POST /api/quotes/{type}
// -----------------------------------------------------------------------------
func (c *QuoteController) SubmitQuote(w http.ResponseWriter, r *http.Request) {
	typeCode := mux.Vars(r)["type"]
	def, ok := schema.Lookup(typeCode)
	if !ok {
		utils.RespondErrorWithCode(
			w, http.StatusNotFound, utils.ErrCodeNotFound, "Unknown quote type", nil,
		)
		return
	}

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}

	sub, fieldErrs := def.Validate(raw)
	if len(fieldErrs) > 0 {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation,
			"One or more fields failed validation", formatFieldErrors(fieldErrs),
		)
		return
	}

	q, err := c.svc.Submit(r.Context(), def, sub)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidEmail) {
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeValidation,
				"Email address failed deliverability checks",
				[]dtos.ValidationErrorDetail{{Field: "email", Message: "email address is not deliverable"}},
			)
			return
		}
		if errors.Is(err, utils.ErrInvalidPhone) {
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeValidation,
				"Phone number failed validation",
				[]dtos.ValidationErrorDetail{{Field: "phone", Message: "phone number is not reachable"}},
			)
			return
		}
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.QuoteSubmissionResponse{
		Success:         true,
		Quote:           q,
		ReferenceNumber: q.ReferenceNumber,
	})
}

// -----------------------------------------------------------------------------
// GET /api/quotes/{type}  (staff)
// -----------------------------------------------------------------------------
func (c *QuoteController) ListQuotes(w http.ResponseWriter, r *http.Request) {
	typeCode := mux.Vars(r)["type"]
	if _, ok := schema.Lookup(typeCode); !ok {
		utils.RespondErrorWithCode(
			w, http.StatusNotFound, utils.ErrCodeNotFound, "Unknown quote type", nil,
		)
		return
	}

	quotes, err := c.svc.ListByType(r.Context(), typeCode)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.QuoteListResponse{
		Success: true,
		Quotes:  quotes,
	})
}

// -----------------------------------------------------------------------------
// PATCH /api/quotes/transport/{id}/status  (staff)
// -----------------------------------------------------------------------------
func (c *QuoteController) UpdateQuoteStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid quote id", nil, err,
		)
		return
	}

	var req dtos.QuoteStatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeValidation,
				"One or more fields failed validation", formatValidationErrors(validationErrs),
			)
		} else {
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err,
			)
		}
		return
	}

	q, err := c.svc.UpdateStatus(r.Context(), id, models.QuoteStatusType(req.Status), req.Notes)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if q == nil {
		utils.RespondErrorWithCode(
			w, http.StatusNotFound, utils.ErrCodeNotFound, "Quote not found", nil,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.QuoteResponse{Success: true, Quote: q})
}
