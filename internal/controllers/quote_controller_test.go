package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/fleetcover/quote-service/internal/config"
	"github.com/fleetcover/quote-service/internal/middleware"
	"github.com/fleetcover/quote-service/internal/models"
	"github.com/fleetcover/quote-service/internal/routes"
	"github.com/fleetcover/quote-service/internal/services"
	"github.com/fleetcover/quote-service/internal/utils"
)

const testSessionSecret = "controller-test-secret"

type memQuoteRepo struct {
	quotes map[uuid.UUID]*models.TransportQuote
}

func newMemQuoteRepo() *memQuoteRepo {
	return &memQuoteRepo{quotes: make(map[uuid.UUID]*models.TransportQuote)}
}

func (m *memQuoteRepo) Create(ctx context.Context, q *models.TransportQuote) error {
	m.quotes[q.ID] = q
	return nil
}

func (m *memQuoteRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.TransportQuote, error) {
	return m.quotes[id], nil
}

func (m *memQuoteRepo) ListByType(ctx context.Context, quoteType string) ([]*models.TransportQuote, error) {
	out := make([]*models.TransportQuote, 0)
	for _, q := range m.quotes {
		if q.QuoteType == quoteType {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memQuoteRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.QuoteStatusType, notes string) (*models.TransportQuote, error) {
	q, ok := m.quotes[id]
	if !ok {
		return nil, nil
	}
	q.Status = status
	q.Notes = notes
	return q, nil
}

type noopNotifier struct{ err error }

func (n *noopNotifier) DispatchQuoteNotifications(q *models.TransportQuote) error    { return n.err }
func (n *noopNotifier) DispatchContactNotification(m *models.ContactMessage) error   { return n.err }
func (n *noopNotifier) DispatchServiceRequestNotification(sr *models.ServiceRequest) error {
	return n.err
}

func newQuoteRouter(repo *memQuoteRepo, notifier services.NotificationService) *mux.Router {
	svc := services.NewQuoteService(&config.Config{}, repo, notifier)
	ctrl := NewQuoteController(svc)
	adminOnly := middleware.AdminAuth(testSessionSecret)

	r := mux.NewRouter()
	r.HandleFunc(routes.QuoteSubmit, ctrl.SubmitQuote).Methods(http.MethodPost)
	r.Handle(routes.QuoteList, adminOnly(http.HandlerFunc(ctrl.ListQuotes))).Methods(http.MethodGet)
	r.Handle(routes.QuoteStatus, adminOnly(http.HandlerFunc(ctrl.UpdateQuoteStatus))).Methods(http.MethodPatch)
	return r
}

func adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "root",
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(testSessionSecret))
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.AdminTokenCookie, Value: signed}
}

func validSubmitBody() map[string]any {
	return map[string]any{
		"businessName":  "Metro EMS LLC",
		"contactName":   "Dana Reeve",
		"email":         "dana@metroems.com",
		"phone":         "5551234567",
		"streetAddress": "100 Main Street",
		"city":          "Columbus",
		"state":         "Ohio",
		"zipCode":       "43004",
		"serviceType":   "911 emergency response",
	}
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSubmitQuoteHappyPath(t *testing.T) {
	repo := newMemQuoteRepo()
	router := newQuoteRouter(repo, &noopNotifier{})

	rec := doJSON(t, router, http.MethodPost, "/api/quotes/ambulance", validSubmitBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success         bool                   `json:"success"`
		ReferenceNumber string                 `json:"referenceNumber"`
		Quote           *models.TransportQuote `json:"quote"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Regexp(t, `^AMB-[0-9A-Z]+$`, resp.ReferenceNumber)
	require.Equal(t, "OH", resp.Quote.State)
	require.Len(t, repo.quotes, 1)
}

func TestSubmitQuoteValidationFailure(t *testing.T) {
	repo := newMemQuoteRepo()
	router := newQuoteRouter(repo, &noopNotifier{})

	body := validSubmitBody()
	delete(body, "businessName")
	body["email"] = "not-an-email"

	rec := doJSON(t, router, http.MethodPost, "/api/quotes/ambulance", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Equal(t, utils.ErrCodeValidation, resp.Code)
	require.Contains(t, fmt.Sprint(resp.Details), "businessName")
	require.Contains(t, fmt.Sprint(resp.Details), "email")

	require.Empty(t, repo.quotes, "invalid submissions are never persisted")
}

func TestSubmitQuoteUnknownType(t *testing.T) {
	router := newQuoteRouter(newMemQuoteRepo(), &noopNotifier{})

	rec := doJSON(t, router, http.MethodPost, "/api/quotes/spaceship", validSubmitBody())
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitQuoteMalformedJSON(t *testing.T) {
	router := newQuoteRouter(newMemQuoteRepo(), &noopNotifier{})

	req := httptest.NewRequest(http.MethodPost, "/api/quotes/limo", bytes.NewBufferString("{nope"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitQuoteNotificationFailureStillSucceeds(t *testing.T) {
	repo := newMemQuoteRepo()
	router := newQuoteRouter(repo, &noopNotifier{err: errors.New("smtp black hole")})

	rec := doJSON(t, router, http.MethodPost, "/api/quotes/ambulance", validSubmitBody())
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.quotes, 1)
}

func TestListQuotesRequiresSession(t *testing.T) {
	router := newQuoteRouter(newMemQuoteRepo(), &noopNotifier{})

	rec := doJSON(t, router, http.MethodGet, "/api/quotes/ambulance", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListQuotesWithSession(t *testing.T) {
	repo := newMemQuoteRepo()
	router := newQuoteRouter(repo, &noopNotifier{})

	rec := doJSON(t, router, http.MethodPost, "/api/quotes/ambulance", validSubmitBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/quotes/ambulance", nil, adminCookie(t))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                     `json:"success"`
		Quotes  []*models.TransportQuote `json:"quotes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Len(t, resp.Quotes, 1)
}

func TestListQuotesUnknownType(t *testing.T) {
	router := newQuoteRouter(newMemQuoteRepo(), &noopNotifier{})

	rec := doJSON(t, router, http.MethodGet, "/api/quotes/spaceship", nil, adminCookie(t))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateQuoteStatus(t *testing.T) {
	repo := newMemQuoteRepo()
	router := newQuoteRouter(repo, &noopNotifier{})

	rec := doJSON(t, router, http.MethodPost, "/api/quotes/ambulance", validSubmitBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var submitted struct {
		Quote *models.TransportQuote `json:"quote"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &submitted))

	rec = doJSON(t, router, http.MethodPatch,
		"/api/quotes/transport/"+submitted.Quote.ID.String()+"/status",
		map[string]any{"status": "reviewed", "notes": "left voicemail"},
		adminCookie(t),
	)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, models.QuoteStatusReviewed, repo.quotes[submitted.Quote.ID].Status)
	require.Equal(t, "left voicemail", repo.quotes[submitted.Quote.ID].Notes)
}

func TestUpdateQuoteStatusNotFound(t *testing.T) {
	router := newQuoteRouter(newMemQuoteRepo(), &noopNotifier{})

	rec := doJSON(t, router, http.MethodPatch,
		"/api/quotes/transport/"+uuid.NewString()+"/status",
		map[string]any{"status": "reviewed"},
		adminCookie(t),
	)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateQuoteStatusRejectsUnknownStatus(t *testing.T) {
	router := newQuoteRouter(newMemQuoteRepo(), &noopNotifier{})

	rec := doJSON(t, router, http.MethodPatch,
		"/api/quotes/transport/"+uuid.NewString()+"/status",
		map[string]any{"status": "vaporized"},
		adminCookie(t),
	)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateQuoteStatusInvalidID(t *testing.T) {
	router := newQuoteRouter(newMemQuoteRepo(), &noopNotifier{})

	rec := doJSON(t, router, http.MethodPatch,
		"/api/quotes/transport/not-a-uuid/status",
		map[string]any{"status": "reviewed"},
		adminCookie(t),
	)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
