package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/fleetcover/quote-service/internal/config"
	"github.com/fleetcover/quote-service/internal/models"
	"github.com/fleetcover/quote-service/internal/schema"
)

// fakeQuoteRepo keeps quotes in a map, keyed by id.
type fakeQuoteRepo struct {
	quotes    map[uuid.UUID]*models.TransportQuote
	createErr error
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{quotes: make(map[uuid.UUID]*models.TransportQuote)}
}

func (f *fakeQuoteRepo) Create(ctx context.Context, q *models.TransportQuote) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.quotes[q.ID] = q
	return nil
}

func (f *fakeQuoteRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.TransportQuote, error) {
	return f.quotes[id], nil
}

func (f *fakeQuoteRepo) ListByType(ctx context.Context, quoteType string) ([]*models.TransportQuote, error) {
	var out []*models.TransportQuote
	for _, q := range f.quotes {
		if q.QuoteType == quoteType {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuoteRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.QuoteStatusType, notes string) (*models.TransportQuote, error) {
	q, ok := f.quotes[id]
	if !ok {
		return nil, nil
	}
	q.Status = status
	q.Notes = notes
	return q, nil
}

// fakeNotifier signals on a channel so tests can wait for the async dispatch.
type fakeNotifier struct {
	dispatched chan *models.TransportQuote
	err        error
}

func newFakeNotifier(err error) *fakeNotifier {
	return &fakeNotifier{dispatched: make(chan *models.TransportQuote, 8), err: err}
}

func (f *fakeNotifier) DispatchQuoteNotifications(q *models.TransportQuote) error {
	f.dispatched <- q
	return f.err
}

func (f *fakeNotifier) DispatchContactNotification(m *models.ContactMessage) error {
	return f.err
}

func (f *fakeNotifier) DispatchServiceRequestNotification(sr *models.ServiceRequest) error {
	return f.err
}

func validAmbulanceSubmission(t *testing.T) (*schema.Definition, *schema.Submission) {
	t.Helper()
	def, ok := schema.Lookup(schema.TypeAmbulance)
	require.True(t, ok)

	sub, errs := def.Validate(map[string]any{
		"businessName":      "Metro EMS LLC",
		"contactName":       "Dana Reeve",
		"email":             "dana@metroems.com",
		"phone":             "5551234567",
		"streetAddress":     "100 Main Street",
		"city":              "Columbus",
		"state":             "OH",
		"zipCode":           "43004",
		"serviceType":       "911 emergency response",
		"emergencyResponse": true,
	})
	require.Empty(t, errs)
	return def, sub
}

func waitForDispatch(t *testing.T, ch chan *models.TransportQuote) *models.TransportQuote {
	t.Helper()
	select {
	case q := <-ch:
		return q
	case <-time.After(2 * time.Second):
		t.Fatal("notification dispatch never happened")
		return nil
	}
}

func TestSubmitPersistsAndAssignsReference(t *testing.T) {
	repo := newFakeQuoteRepo()
	notifier := newFakeNotifier(nil)
	svc := NewQuoteService(&config.Config{}, repo, notifier)

	def, sub := validAmbulanceSubmission(t)
	q, err := svc.Submit(context.Background(), def, sub)
	require.NoError(t, err)
	require.NotNil(t, q)

	require.Regexp(t, `^AMB-[0-9A-Z]+$`, q.ReferenceNumber)
	require.Equal(t, models.QuoteStatusNew, q.Status)
	require.Equal(t, schema.TypeAmbulance, q.QuoteType)
	require.Equal(t, "Metro EMS LLC", q.BusinessName)
	require.Equal(t, true, q.Details["emergencyResponse"], "non-core fields land in details")
	require.NotContains(t, q.Details, "businessName", "core fields are promoted out of details")
	require.Nil(t, q.Documents, "no uploads means no documents")

	require.Contains(t, repo.quotes, q.ID)
	require.Equal(t, q.ReferenceNumber, waitForDispatch(t, notifier.dispatched).ReferenceNumber)
}

func TestSubmitNotificationFailureDoesNotFailRequest(t *testing.T) {
	repo := newFakeQuoteRepo()
	notifier := newFakeNotifier(errors.New("sendgrid is down"))
	svc := NewQuoteService(&config.Config{}, repo, notifier)

	def, sub := validAmbulanceSubmission(t)
	q, err := svc.Submit(context.Background(), def, sub)
	require.NoError(t, err, "notification failures never surface to the caller")
	require.NotNil(t, q)
	require.Contains(t, repo.quotes, q.ID, "the quote is persisted regardless")

	waitForDispatch(t, notifier.dispatched)
}

func TestSubmitRepoFailure(t *testing.T) {
	repo := newFakeQuoteRepo()
	repo.createErr = errors.New("connection refused")
	notifier := newFakeNotifier(nil)
	svc := NewQuoteService(&config.Config{}, repo, notifier)

	def, sub := validAmbulanceSubmission(t)
	_, err := svc.Submit(context.Background(), def, sub)
	require.Error(t, err)

	select {
	case <-notifier.dispatched:
		t.Fatal("no notification should be dispatched when persistence fails")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo := newFakeQuoteRepo()
	svc := NewQuoteService(&config.Config{}, repo, newFakeNotifier(nil))

	q, err := svc.UpdateStatus(context.Background(), uuid.New(), models.QuoteStatusReviewed, "ping left")
	require.NoError(t, err)
	require.Nil(t, q)
}

func TestUpdateStatusMutatesOnlyStatusAndNotes(t *testing.T) {
	repo := newFakeQuoteRepo()
	notifier := newFakeNotifier(nil)
	svc := NewQuoteService(&config.Config{}, repo, notifier)

	def, sub := validAmbulanceSubmission(t)
	q, err := svc.Submit(context.Background(), def, sub)
	require.NoError(t, err)
	waitForDispatch(t, notifier.dispatched)

	updated, err := svc.UpdateStatus(context.Background(), q.ID, models.QuoteStatusClosed, "bound with carrier")
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, models.QuoteStatusClosed, updated.Status)
	require.Equal(t, "bound with carrier", updated.Notes)
	require.Equal(t, q.ReferenceNumber, updated.ReferenceNumber)
}
