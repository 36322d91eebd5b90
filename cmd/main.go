package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	_ "time/tzdata"

	"github.com/fleetcover/quote-service/internal/app"
	"github.com/fleetcover/quote-service/internal/config"
	"github.com/fleetcover/quote-service/internal/controllers"
	"github.com/fleetcover/quote-service/internal/middleware"
	"github.com/fleetcover/quote-service/internal/routes"
	"github.com/fleetcover/quote-service/internal/utils"
)

func main() {
	_ = godotenv.Load()

	utils.InitLogger(config.AppName)

	// 1) Config
	cfg := config.LoadConfig()

	// 2) Core application (DB pool, migrations, services)
	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize app: ", err)
	}
	defer application.Close()

	// 3) Controllers
	healthCtrl := controllers.NewHealthController(application)
	quoteCtrl := controllers.NewQuoteController(application.QuoteService)
	contactCtrl := controllers.NewContactController(application.ContactService)
	adminCtrl := controllers.NewAdminAuthController(application.AdminAuthService)
	contentCtrl := controllers.NewContentController(application.ContentService)
	objectsCtrl := controllers.NewObjectsController(application.ObjectStorage)

	adminOnly := middleware.AdminAuth(cfg.SessionSecret)

	// 4) Router
	router := mux.NewRouter()
	router.HandleFunc(routes.Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)

	// Public submission surface
	router.HandleFunc(routes.QuoteSubmit, quoteCtrl.SubmitQuote).Methods(http.MethodPost)
	router.HandleFunc(routes.Contact, contactCtrl.SubmitContactMessage).Methods(http.MethodPost)
	router.HandleFunc(routes.ServiceRequests, contactCtrl.SubmitServiceRequest).Methods(http.MethodPost)
	router.HandleFunc(routes.ObjectsUpload, objectsCtrl.Upload).Methods(http.MethodPost)
	router.HandleFunc(routes.ObjectsFinalize, objectsCtrl.Finalize).Methods(http.MethodPut)

	// Public site content
	router.HandleFunc(routes.Content, contentCtrl.GetContent).Methods(http.MethodGet)
	router.HandleFunc(routes.Blog, contentCtrl.ListBlogPosts).Methods(http.MethodGet)
	router.HandleFunc(routes.BlogBySlug, contentCtrl.GetBlogPost).Methods(http.MethodGet)
	router.HandleFunc(routes.News, contentCtrl.ListNewsReleases).Methods(http.MethodGet)
	router.HandleFunc(routes.NewsBySlug, contentCtrl.GetNewsRelease).Methods(http.MethodGet)

	// Admin session
	router.HandleFunc(routes.AdminLogin, adminCtrl.Login).Methods(http.MethodPost)
	router.HandleFunc(routes.AdminLogout, adminCtrl.Logout).Methods(http.MethodPost)
	router.Handle(routes.AdminStatus, adminOnly(http.HandlerFunc(adminCtrl.Status))).Methods(http.MethodGet)

	// Staff-only surface
	router.Handle(routes.QuoteList, adminOnly(http.HandlerFunc(quoteCtrl.ListQuotes))).Methods(http.MethodGet)
	router.Handle(routes.QuoteStatus, adminOnly(http.HandlerFunc(quoteCtrl.UpdateQuoteStatus))).Methods(http.MethodPatch)
	router.Handle(routes.Contact, adminOnly(http.HandlerFunc(contactCtrl.ListContactMessages))).Methods(http.MethodGet)
	router.Handle(routes.ServiceRequests, adminOnly(http.HandlerFunc(contactCtrl.ListServiceRequests))).Methods(http.MethodGet)
	router.Handle(routes.Content, adminOnly(http.HandlerFunc(contentCtrl.UpsertContent))).Methods(http.MethodPut)
	router.Handle(routes.Blog, adminOnly(http.HandlerFunc(contentCtrl.CreateBlogPost))).Methods(http.MethodPost)
	router.Handle(routes.News, adminOnly(http.HandlerFunc(contentCtrl.CreateNewsRelease))).Methods(http.MethodPost)
	router.Handle(routes.ObjectsServe, adminOnly(http.HandlerFunc(objectsCtrl.Serve))).Methods(http.MethodGet)

	// 5) CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on :%s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, c.Handler(router)); err != nil {
		utils.Logger.Fatal("Server error:", err)
	}
}
