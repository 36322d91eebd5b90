package config

import (
	"os"
	"strconv"

	"github.com/fleetcover/quote-service/internal/utils"
)

const (
	OrganizationName = "FleetCover"
	AppName          = "quote-service"
)

type Config struct {
	OrganizationName string
	AppName          string
	AppPort          string
	AppUrl           string

	DatabaseURL string

	SendgridAPIKey string
	FromEmail      string
	NotifyEmail    string

	AdminPassword string
	SessionSecret string

	ObjectStorageDir string

	// Optional deliverability checks (off unless configured).
	ValidateEmailWithSendgrid bool
	ValidatePhoneWithTwilio   bool
	TwilioAccountSID          string
	TwilioAuthToken           string
}

// LoadConfig reads everything from the environment and fails fast on
// missing required values.
func LoadConfig() *Config {
	utils.Logger.Info("Loading config for app: ", AppName)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		utils.Logger.Fatal("APP_URL env var is missing")
	}
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DATABASE_URL env var is missing")
	}
	sgAPI := os.Getenv("SENDGRID_API_KEY")
	if sgAPI == "" {
		utils.Logger.Fatal("SENDGRID_API_KEY env var is missing")
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		utils.Logger.Fatal("ADMIN_PASSWORD env var is missing")
	}
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		utils.Logger.Fatal("SESSION_SECRET env var is missing")
	}

	fromEmail := os.Getenv("FROM_EMAIL")
	if fromEmail == "" {
		fromEmail = "quotes@fleetcover.com"
	}
	notifyEmail := os.Getenv("NOTIFY_EMAIL")
	if notifyEmail == "" {
		notifyEmail = "team@fleetcover.com"
	}
	objectDir := os.Getenv("OBJECT_STORAGE_DIR")
	if objectDir == "" {
		objectDir = "./data/objects"
	}

	utils.Logger.Infof("Loaded config for %s", AppName)

	return &Config{
		OrganizationName:          OrganizationName,
		AppName:                   AppName,
		AppPort:                   appPort,
		AppUrl:                    appURL,
		DatabaseURL:               dbURL,
		SendgridAPIKey:            sgAPI,
		FromEmail:                 fromEmail,
		NotifyEmail:               notifyEmail,
		AdminPassword:             adminPassword,
		SessionSecret:             sessionSecret,
		ObjectStorageDir:          objectDir,
		ValidateEmailWithSendgrid: envBool("VALIDATE_EMAIL_WITH_SENDGRID"),
		ValidatePhoneWithTwilio:   envBool("VALIDATE_PHONE_WITH_TWILIO"),
		TwilioAccountSID:          os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:           os.Getenv("TWILIO_AUTH_TOKEN"),
	}
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
