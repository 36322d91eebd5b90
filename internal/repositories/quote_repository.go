package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/fleetcover/quote-service/internal/models"
	"github.com/fleetcover/quote-service/internal/schema"
)

// TransportQuoteRepository defines the interface for quote persistence.
// Not-found reads return (nil, nil).
type TransportQuoteRepository interface {
	Create(ctx context.Context, q *models.TransportQuote) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.TransportQuote, error)
	ListByType(ctx context.Context, quoteType string) ([]*models.TransportQuote, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.QuoteStatusType, notes string) (*models.TransportQuote, error)
}

type transportQuoteRepo struct{ db DB }

func NewTransportQuoteRepository(db DB) TransportQuoteRepository {
	return &transportQuoteRepo{db: db}
}

func (r *transportQuoteRepo) Create(ctx context.Context, q *models.TransportQuote) error {
	details, err := marshalDetails(q.Details)
	if err != nil {
		return err
	}
	vehicles, err := marshalVehicles(q.Vehicles)
	if err != nil {
		return err
	}
	drivers, err := marshalDrivers(q.Drivers)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO transport_quotes (
			id, quote_type, reference_number,
			business_name, contact_name, email, phone,
			street_address, city, state, zip_code,
			details, vehicles, drivers, documents,
			status, notes, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
	`, q.ID, q.QuoteType, q.ReferenceNumber,
		q.BusinessName, q.ContactName, q.Email, q.Phone,
		q.StreetAddress, q.City, q.State, q.ZipCode,
		details, vehicles, drivers, q.Documents,
		string(q.Status), q.Notes, q.CreatedAt,
	)
	return err
}

func (r *transportQuoteRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.TransportQuote, error) {
	row := r.db.QueryRow(ctx, baseSelectQuote()+" WHERE id=$1", id)
	return r.scanQuote(row)
}

func (r *transportQuoteRepo) ListByType(ctx context.Context, quoteType string) ([]*models.TransportQuote, error) {
	rows, err := r.db.Query(ctx,
		baseSelectQuote()+" WHERE quote_type=$1 ORDER BY created_at DESC, reference_number DESC",
		quoteType,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotes := make([]*models.TransportQuote, 0)
	for rows.Next() {
		q, err := r.scanQuote(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

func (r *transportQuoteRepo) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status models.QuoteStatusType,
	notes string,
) (*models.TransportQuote, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE transport_quotes SET status=$1, notes=$2 WHERE id=$3
	`, string(status), notes, id)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func baseSelectQuote() string {
	return `
		SELECT id, quote_type, reference_number,
		       business_name, contact_name, email, phone,
		       street_address, city, state, zip_code,
		       details, vehicles, drivers, documents,
		       status, notes, created_at
		FROM transport_quotes`
}

func (r *transportQuoteRepo) scanQuote(row pgx.Row) (*models.TransportQuote, error) {
	var (
		q        models.TransportQuote
		status   string
		details  string
		vehicles string
		drivers  string
	)

	err := row.Scan(
		&q.ID, &q.QuoteType, &q.ReferenceNumber,
		&q.BusinessName, &q.ContactName, &q.Email, &q.Phone,
		&q.StreetAddress, &q.City, &q.State, &q.ZipCode,
		&details, &vehicles, &drivers, &q.Documents,
		&status, &q.Notes, &q.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	q.Status = models.QuoteStatusType(status)
	if q.Details, err = unmarshalDetails(details); err != nil {
		return nil, err
	}
	if q.Vehicles, err = unmarshalVehicles(vehicles); err != nil {
		return nil, err
	}
	if q.Drivers, err = unmarshalDrivers(drivers); err != nil {
		return nil, err
	}
	return &q, nil
}

// ------------------------------------------------------------------
// JSON blob codecs
//
// Vehicle/driver collections and the line-specific detail map cross the
// storage boundary as opaque JSON-encoded strings, not relational rows.
// ------------------------------------------------------------------

func marshalDetails(details map[string]any) (string, error) {
	if details == nil {
		details = map[string]any{}
	}
	buf, err := json.Marshal(details)
	if err != nil {
		return "", fmt.Errorf("encode quote details: %w", err)
	}
	return string(buf), nil
}

func unmarshalDetails(raw string) (map[string]any, error) {
	details := map[string]any{}
	if raw == "" {
		return details, nil
	}
	if err := json.Unmarshal([]byte(raw), &details); err != nil {
		return nil, fmt.Errorf("decode quote details: %w", err)
	}
	return details, nil
}

func marshalVehicles(vehicles []schema.Vehicle) (string, error) {
	if vehicles == nil {
		vehicles = []schema.Vehicle{}
	}
	buf, err := json.Marshal(vehicles)
	if err != nil {
		return "", fmt.Errorf("encode vehicles: %w", err)
	}
	return string(buf), nil
}

func unmarshalVehicles(raw string) ([]schema.Vehicle, error) {
	vehicles := []schema.Vehicle{}
	if raw == "" {
		return vehicles, nil
	}
	if err := json.Unmarshal([]byte(raw), &vehicles); err != nil {
		return nil, fmt.Errorf("decode vehicles: %w", err)
	}
	return vehicles, nil
}

func marshalDrivers(drivers []schema.Driver) (string, error) {
	if drivers == nil {
		drivers = []schema.Driver{}
	}
	buf, err := json.Marshal(drivers)
	if err != nil {
		return "", fmt.Errorf("encode drivers: %w", err)
	}
	return string(buf), nil
}

func unmarshalDrivers(raw string) ([]schema.Driver, error) {
	drivers := []schema.Driver{}
	if raw == "" {
		return drivers, nil
	}
	if err := json.Unmarshal([]byte(raw), &drivers); err != nil {
		return nil, fmt.Errorf("decode drivers: %w", err)
	}
	return drivers, nil
}
