package models

import (
	"time"

	"github.com/google/uuid"
)

type ServiceRequestType string

const (
	ServiceRequestCertificate  ServiceRequestType = "certificate"
	ServiceRequestPolicyChange ServiceRequestType = "policy_change"
	ServiceRequestClaim        ServiceRequestType = "claim"
)

// ServiceRequest is a policy-service request from an existing customer
// (certificate of insurance, policy change, claim report).
type ServiceRequest struct {
	ID           uuid.UUID          `json:"id"`
	RequestType  ServiceRequestType `json:"requestType"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	PolicyNumber string             `json:"policyNumber"`
	Details      string             `json:"details"`
	CreatedAt    time.Time          `json:"createdAt"`
}
