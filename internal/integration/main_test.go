//go:build dev && integration

package integration

import (
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/fleetcover/quote-service/internal/app"
	"github.com/fleetcover/quote-service/internal/config"
	"github.com/fleetcover/quote-service/internal/controllers"
	"github.com/fleetcover/quote-service/internal/middleware"
	"github.com/fleetcover/quote-service/internal/routes"
	"github.com/fleetcover/quote-service/internal/utils"
)

var (
	cfg    *config.Config
	server *httptest.Server
)

// TestMain boots the full application against the DATABASE_URL from the
// environment and serves it on an ephemeral port for the flow tests.
func TestMain(m *testing.M) {
	_ = godotenv.Load("../../.env")

	utils.InitLogger(config.AppName)
	cfg = config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	server = httptest.NewServer(buildRouter(application))

	code := m.Run()

	server.Close()
	application.Close()
	os.Exit(code)
}

// buildRouter mirrors the wiring in cmd/main.go minus CORS.
func buildRouter(application *app.App) *mux.Router {
	healthCtrl := controllers.NewHealthController(application)
	quoteCtrl := controllers.NewQuoteController(application.QuoteService)
	contactCtrl := controllers.NewContactController(application.ContactService)
	adminCtrl := controllers.NewAdminAuthController(application.AdminAuthService)

	adminOnly := middleware.AdminAuth(cfg.SessionSecret)

	r := mux.NewRouter()
	r.HandleFunc(routes.Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)
	r.HandleFunc(routes.QuoteSubmit, quoteCtrl.SubmitQuote).Methods(http.MethodPost)
	r.Handle(routes.QuoteList, adminOnly(http.HandlerFunc(quoteCtrl.ListQuotes))).Methods(http.MethodGet)
	r.Handle(routes.QuoteStatus, adminOnly(http.HandlerFunc(quoteCtrl.UpdateQuoteStatus))).Methods(http.MethodPatch)
	r.HandleFunc(routes.Contact, contactCtrl.SubmitContactMessage).Methods(http.MethodPost)
	r.Handle(routes.Contact, adminOnly(http.HandlerFunc(contactCtrl.ListContactMessages))).Methods(http.MethodGet)
	r.HandleFunc(routes.AdminLogin, adminCtrl.Login).Methods(http.MethodPost)
	r.HandleFunc(routes.AdminLogout, adminCtrl.Logout).Methods(http.MethodPost)
	r.Handle(routes.AdminStatus, adminOnly(http.HandlerFunc(adminCtrl.Status))).Methods(http.MethodGet)
	return r
}
