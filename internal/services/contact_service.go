package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/fleetcover/quote-service/internal/config"
	"github.com/fleetcover/quote-service/internal/dtos"
	"github.com/fleetcover/quote-service/internal/models"
	"github.com/fleetcover/quote-service/internal/repositories"
	"github.com/fleetcover/quote-service/internal/utils"
)

// ContactService persists contact-form messages and policy service
// requests, notifying staff asynchronously.
type ContactService interface {
	SubmitContactMessage(ctx context.Context, req dtos.ContactMessageRequest) (*models.ContactMessage, error)
	ListContactMessages(ctx context.Context) ([]*models.ContactMessage, error)
	SubmitServiceRequest(ctx context.Context, req dtos.ServiceRequestRequest) (*models.ServiceRequest, error)
	ListServiceRequests(ctx context.Context) ([]*models.ServiceRequest, error)
}

type contactService struct {
	cfg         *config.Config
	contactRepo repositories.ContactMessageRepository
	serviceRepo repositories.ServiceRequestRepository
	notifier    NotificationService
}

func NewContactService(
	cfg *config.Config,
	contactRepo repositories.ContactMessageRepository,
	serviceRepo repositories.ServiceRequestRepository,
	notifier NotificationService,
) ContactService {
	return &contactService{
		cfg:         cfg,
		contactRepo: contactRepo,
		serviceRepo: serviceRepo,
		notifier:    notifier,
	}
}

func (s *contactService) SubmitContactMessage(ctx context.Context, req dtos.ContactMessageRequest) (*models.ContactMessage, error) {
	m := &models.ContactMessage{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.contactRepo.Create(ctx, m); err != nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusInternalServerError,
			Code:       utils.ErrCodeInternal,
			Message:    "Failed to save contact message",
			Err:        err,
		}
	}

	go func(m *models.ContactMessage) {
		if err := s.notifier.DispatchContactNotification(m); err != nil {
			utils.Logger.WithError(err).
				WithField("messageID", m.ID).
				Error("Contact notification dispatch failed")
		}
	}(m)

	return m, nil
}

func (s *contactService) ListContactMessages(ctx context.Context) ([]*models.ContactMessage, error) {
	messages, err := s.contactRepo.ListAll(ctx)
	if err != nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusInternalServerError,
			Code:       utils.ErrCodeInternal,
			Message:    "Failed to list contact messages",
			Err:        err,
		}
	}
	return messages, nil
}

func (s *contactService) SubmitServiceRequest(ctx context.Context, req dtos.ServiceRequestRequest) (*models.ServiceRequest, error) {
	sr := &models.ServiceRequest{
		ID:           uuid.New(),
		RequestType:  models.ServiceRequestType(req.RequestType),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PolicyNumber: req.PolicyNumber,
		Details:      req.Details,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.serviceRepo.Create(ctx, sr); err != nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusInternalServerError,
			Code:       utils.ErrCodeInternal,
			Message:    "Failed to save service request",
			Err:        err,
		}
	}

	go func(sr *models.ServiceRequest) {
		if err := s.notifier.DispatchServiceRequestNotification(sr); err != nil {
			utils.Logger.WithError(err).
				WithField("requestID", sr.ID).
				Error("Service request notification dispatch failed")
		}
	}(sr)

	return sr, nil
}

func (s *contactService) ListServiceRequests(ctx context.Context) ([]*models.ServiceRequest, error) {
	requests, err := s.serviceRepo.ListAll(ctx)
	if err != nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusInternalServerError,
			Code:       utils.ErrCodeInternal,
			Message:    "Failed to list service requests",
			Err:        err,
		}
	}
	return requests, nil
}
