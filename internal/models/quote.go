package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/fleetcover/quote-service/internal/schema"
)

type QuoteStatusType string

const (
	QuoteStatusNew      QuoteStatusType = "new"
	QuoteStatusReviewed QuoteStatusType = "reviewed"
	QuoteStatusClosed   QuoteStatusType = "closed"
)

// TransportQuote is one submitted quote request. Everything except Status
// and Notes is immutable after creation; rows are never deleted by the
// public flow.
type TransportQuote struct {
	ID              uuid.UUID       `json:"id"`
	QuoteType       string          `json:"quoteType"`
	ReferenceNumber string          `json:"referenceNumber"`
	BusinessName    string          `json:"businessName"`
	ContactName     string          `json:"contactName"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	StreetAddress   string          `json:"streetAddress"`
	City            string          `json:"city"`
	State           string          `json:"state"`
	ZipCode         string          `json:"zipCode"`

	// Line-specific long tail (discriminator, coverage flags, limits,
	// operational metrics), keyed by schema field name.
	Details map[string]any `json:"details,omitempty"`

	// Vehicles and Drivers cross the storage boundary as opaque
	// JSON-encoded strings, not relational rows.
	Vehicles []schema.Vehicle `json:"vehicles"`
	Drivers  []schema.Driver  `json:"drivers"`

	// Documents is nil when no uploads were attached.
	Documents []string `json:"documents,omitempty"`

	Status    QuoteStatusType `json:"status"`
	Notes     string          `json:"notes"`
	CreatedAt time.Time       `json:"createdAt"`
}
