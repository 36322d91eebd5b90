package dtos

import "github.com/fleetcover/quote-service/internal/models"

// QuoteSubmissionResponse is returned with HTTP 201 on a successful submit.
type QuoteSubmissionResponse struct {
	Success         bool                   `json:"success"`
	Quote           *models.TransportQuote `json:"quote"`
	ReferenceNumber string                 `json:"referenceNumber"`
}

// QuoteListResponse is the staff listing payload.
type QuoteListResponse struct {
	Success bool                     `json:"success"`
	Quotes  []*models.TransportQuote `json:"quotes"`
}

// QuoteStatusUpdateRequest mutates only the status/notes fields.
type QuoteStatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=new reviewed closed"`
	Notes  string `json:"notes" validate:"max=5000"`
}

// QuoteResponse wraps a single quote (status updates, lookups).
type QuoteResponse struct {
	Success bool                   `json:"success"`
	Quote   *models.TransportQuote `json:"quote"`
}
