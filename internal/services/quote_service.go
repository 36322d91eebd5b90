package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	twilio "github.com/twilio/twilio-go"

	"github.com/fleetcover/quote-service/internal/config"
	"github.com/fleetcover/quote-service/internal/models"
	"github.com/fleetcover/quote-service/internal/repositories"
	"github.com/fleetcover/quote-service/internal/schema"
	"github.com/fleetcover/quote-service/internal/utils"
)

// coreFieldNames are promoted from the validated submission into dedicated
// columns; everything else lands in the details blob.
var coreFieldNames = map[string]bool{
	"businessName":  true,
	"contactName":   true,
	"email":         true,
	"phone":         true,
	"streetAddress": true,
	"city":          true,
	"state":         true,
	"zipCode":       true,
}

// QuoteService owns the submit/list/update-status pipeline for every quote
// line. Validation happens in the controller against the type's schema;
// Submit receives an already-normalized submission.
type QuoteService interface {
	Submit(ctx context.Context, def *schema.Definition, sub *schema.Submission) (*models.TransportQuote, error)
	ListByType(ctx context.Context, quoteType string) ([]*models.TransportQuote, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.QuoteStatusType, notes string) (*models.TransportQuote, error)
}

type quoteService struct {
	cfg      *config.Config
	repo     repositories.TransportQuoteRepository
	notifier NotificationService
	twilio   *twilio.RestClient
}

func NewQuoteService(
	cfg *config.Config,
	repo repositories.TransportQuoteRepository,
	notifier NotificationService,
) QuoteService {
	svc := &quoteService{cfg: cfg, repo: repo, notifier: notifier}
	if cfg.ValidatePhoneWithTwilio {
		svc.twilio = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	}
	return svc
}

func (s *quoteService) Submit(
	ctx context.Context,
	def *schema.Definition,
	sub *schema.Submission,
) (*models.TransportQuote, error) {
	email := sub.Strings["email"]

	// Optional deliverability checks on top of the schema-level syntax
	// checks; both disabled unless configured.
	if s.cfg.ValidateEmailWithSendgrid {
		ok, err := utils.ValidateEmailDeliverability(ctx, s.cfg.SendgridAPIKey, email, true)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, utils.ErrInvalidEmail
		}
	}
	if s.cfg.ValidatePhoneWithTwilio {
		ok, err := utils.ValidatePhoneNumber(ctx, sub.Strings["phone"], true, s.twilio)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, utils.ErrInvalidPhone
		}
	}

	q := buildQuote(def, sub)
	if err := s.repo.Create(ctx, q); err != nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusInternalServerError,
			Code:       utils.ErrCodeInternal,
			Message:    "Failed to save quote request",
			Err:        err,
		}
	}

	// Fire-and-forget: the HTTP response never waits on (or fails with)
	// notification delivery.
	go func(q *models.TransportQuote) {
		if err := s.notifier.DispatchQuoteNotifications(q); err != nil {
			utils.Logger.WithError(err).
				WithField("referenceNumber", q.ReferenceNumber).
				Error("Quote notification dispatch failed")
		}
	}(q)

	return q, nil
}

func buildQuote(def *schema.Definition, sub *schema.Submission) *models.TransportQuote {
	details := make(map[string]any)
	for name, v := range sub.Strings {
		if !coreFieldNames[name] && v != "" {
			details[name] = v
		}
	}
	for name, v := range sub.Flags {
		details[name] = v
	}
	for name, v := range sub.Lists {
		if name != "documents" {
			details[name] = v
		}
	}

	var documents []string
	if docs := sub.Lists["documents"]; len(docs) > 0 {
		documents = docs
	}

	return &models.TransportQuote{
		ID:              uuid.New(),
		QuoteType:       def.Type,
		ReferenceNumber: utils.NewReferenceNumber(def.Prefix),
		BusinessName:    sub.Strings["businessName"],
		ContactName:     sub.Strings["contactName"],
		Email:           sub.Strings["email"],
		Phone:           sub.Strings["phone"],
		StreetAddress:   sub.Strings["streetAddress"],
		City:            sub.Strings["city"],
		State:           sub.Strings["state"],
		ZipCode:         sub.Strings["zipCode"],
		Details:         details,
		Vehicles:        sub.Vehicles,
		Drivers:         sub.Drivers,
		Documents:       documents,
		Status:          models.QuoteStatusNew,
		Notes:           "",
		CreatedAt:       time.Now().UTC(),
	}
}

func (s *quoteService) ListByType(ctx context.Context, quoteType string) ([]*models.TransportQuote, error) {
	quotes, err := s.repo.ListByType(ctx, quoteType)
	if err != nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusInternalServerError,
			Code:       utils.ErrCodeInternal,
			Message:    "Failed to list quote requests",
			Err:        err,
		}
	}
	return quotes, nil
}

func (s *quoteService) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status models.QuoteStatusType,
	notes string,
) (*models.TransportQuote, error) {
	q, err := s.repo.UpdateStatus(ctx, id, status, notes)
	if err != nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusInternalServerError,
			Code:       utils.ErrCodeInternal,
			Message:    "Failed to update quote status",
			Err:        err,
		}
	}
	return q, nil
}
