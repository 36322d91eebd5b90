package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/fleetcover/quote-service/internal/config"
	"github.com/fleetcover/quote-service/internal/db"
	"github.com/fleetcover/quote-service/internal/repositories"
	"github.com/fleetcover/quote-service/internal/services"
	"github.com/fleetcover/quote-service/internal/utils"
)

const (
	maxRetries     = 5
	connectTimeout = 5 * time.Second
	initialBackoff = 500 * time.Millisecond
)

// App holds the config, the database pool and every constructed service.
type App struct {
	Config *config.Config
	DB     *pgxpool.Pool

	QuoteService     services.QuoteService
	ContactService   services.ContactService
	AdminAuthService services.AdminAuthService
	ContentService   services.ContentService
	ObjectStorage    services.ObjectStorage
}

func NewApp(cfg *config.Config) (*App, error) {
	utils.Logger.Info("Initializing quote-service App")

	var (
		dbPool  *pgxpool.Pool
		err     error
		backoff = initialBackoff
	)

	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()

		dbPool, err = newDBPool(ctx, cfg.DatabaseURL)
		if err == nil {
			utils.Logger.Infof("Successfully connected to database on attempt %d", i)
			break
		}

		utils.Logger.WithError(err).Warnf(
			"Failed to connect to database on attempt %d/%d. Retrying in %v...",
			i, maxRetries, backoff,
		)

		if i == maxRetries {
			return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
		}

		time.Sleep(backoff)
		backoff *= 2
	}

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		dbPool.Close()
		return nil, err
	}

	quoteRepo := repositories.NewTransportQuoteRepository(dbPool)
	contactRepo := repositories.NewContactMessageRepository(dbPool)
	serviceReqRepo := repositories.NewServiceRequestRepository(dbPool)
	adminRepo := repositories.NewAdminUserRepository(dbPool)
	contentRepo := repositories.NewSiteContentRepository(dbPool)
	postRepo := repositories.NewPostRepository(dbPool)

	notifier := services.NewNotificationService(cfg)

	storage, err := services.NewLocalObjectStorage(cfg.ObjectStorageDir)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	return &App{
		Config:           cfg,
		DB:               dbPool,
		QuoteService:     services.NewQuoteService(cfg, quoteRepo, notifier),
		ContactService:   services.NewContactService(cfg, contactRepo, serviceReqRepo, notifier),
		AdminAuthService: services.NewAdminAuthService(cfg, adminRepo),
		ContentService:   services.NewContentService(contentRepo, postRepo),
		ObjectStorage:    storage,
	}, nil
}

// Ping verifies database connectivity for the health endpoint.
func (a *App) Ping(ctx context.Context) error {
	return a.DB.Ping(ctx)
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
		utils.Logger.Info("Database connection closed.")
	}
}

// newDBPool constructs the pgx pool. Idle connections are retired before the
// platform proxy would kill them, and the health check keeps sockets warm.
func newDBPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}

	poolCfg.MaxConnIdleTime = 2 * time.Minute
	poolCfg.HealthCheckPeriod = 30 * time.Second

	return pgxpool.ConnectConfig(ctx, poolCfg)
}
