package dtos

import "github.com/fleetcover/quote-service/internal/models"

type ContactMessageRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,min=10"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

type ContactMessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ContactListResponse struct {
	Success  bool                     `json:"success"`
	Messages []*models.ContactMessage `json:"messages"`
}

type ServiceRequestRequest struct {
	RequestType  string `json:"requestType" validate:"required,oneof=certificate policy_change claim"`
	Name         string `json:"name" validate:"required,min=2"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"omitempty,min=10"`
	PolicyNumber string `json:"policyNumber" validate:"required,min=3"`
	Details      string `json:"details" validate:"omitempty,max=5000"`
}

type ServiceRequestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ServiceRequestListResponse struct {
	Success  bool                     `json:"success"`
	Requests []*models.ServiceRequest `json:"requests"`
}
