package repositories

import (
	"context"

	"github.com/fleetcover/quote-service/internal/models"
)

type ServiceRequestRepository interface {
	Create(ctx context.Context, sr *models.ServiceRequest) error
	ListAll(ctx context.Context) ([]*models.ServiceRequest, error)
}

type serviceRequestRepo struct{ db DB }

func NewServiceRequestRepository(db DB) ServiceRequestRepository {
	return &serviceRequestRepo{db: db}
}

func (r *serviceRequestRepo) Create(ctx context.Context, sr *models.ServiceRequest) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO service_requests (id, request_type, name, email, phone, policy_number, details, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`, sr.ID, string(sr.RequestType), sr.Name, sr.Email, sr.Phone, sr.PolicyNumber, sr.Details, sr.CreatedAt)
	return err
}

func (r *serviceRequestRepo) ListAll(ctx context.Context) ([]*models.ServiceRequest, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, request_type, name, email, phone, policy_number, details, created_at
		FROM service_requests ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]*models.ServiceRequest, 0)
	for rows.Next() {
		var (
			sr    models.ServiceRequest
			rtype string
		)
		if err := rows.Scan(&sr.ID, &rtype, &sr.Name, &sr.Email, &sr.Phone, &sr.PolicyNumber, &sr.Details, &sr.CreatedAt); err != nil {
			return nil, err
		}
		sr.RequestType = models.ServiceRequestType(rtype)
		requests = append(requests, &sr)
	}
	return requests, rows.Err()
}
