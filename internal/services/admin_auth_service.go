package services

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fleetcover/quote-service/internal/config"
	"github.com/fleetcover/quote-service/internal/repositories"
	"github.com/fleetcover/quote-service/internal/utils"
)

const (
	RoleAdmin = "admin"

	// SuperAdminID is the principal id of the environment-configured
	// credential; database-backed staff carry their row uuid instead.
	SuperAdminID       = "root"
	SuperAdminUsername = "admin"

	sessionTTL = 24 * time.Hour
)

// Principal is the normalized outcome of credential resolution: both the
// env super-admin and admin_users rows produce the same shape.
type Principal struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// AdminAuthService resolves credentials to a Principal and mints the
// session token carried in the admin cookie.
type AdminAuthService interface {
	Login(ctx context.Context, username, password string) (string, *Principal, error)
}

type adminAuthService struct {
	cfg  *config.Config
	repo repositories.AdminUserRepository
}

func NewAdminAuthService(cfg *config.Config, repo repositories.AdminUserRepository) AdminAuthService {
	return &adminAuthService{cfg: cfg, repo: repo}
}

// Login resolves the credentials and returns a signed session token plus
// the principal it represents.
func (s *adminAuthService) Login(ctx context.Context, username, password string) (string, *Principal, error) {
	principal, err := s.resolvePrincipal(ctx, username, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.mintToken(principal)
	if err != nil {
		return "", nil, &utils.AppError{
			StatusCode: http.StatusInternalServerError,
			Code:       utils.ErrCodeInternal,
			Message:    "Failed to create session",
			Err:        err,
		}
	}
	return token, principal, nil
}

// resolvePrincipal is the single credential-resolution step: the
// environment super-admin and database-backed users both funnel through
// here and come out as the same Principal shape.
func (s *adminAuthService) resolvePrincipal(ctx context.Context, username, password string) (*Principal, error) {
	if username == SuperAdminUsername {
		if subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1 {
			return &Principal{ID: SuperAdminID, Role: RoleAdmin}, nil
		}
		return nil, invalidCredentials()
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusInternalServerError,
			Code:       utils.ErrCodeInternal,
			Message:    "Failed to look up staff account",
			Err:        err,
		}
	}
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, invalidCredentials()
	}
	return &Principal{ID: user.ID.String(), Role: RoleAdmin}, nil
}

func invalidCredentials() error {
	return &utils.AppError{
		StatusCode: http.StatusUnauthorized,
		Code:       utils.ErrCodeInvalidCredentials,
		Message:    "Invalid username or password",
		Err:        utils.ErrInvalidCredentials,
	}
}

func (s *adminAuthService) mintToken(p *Principal) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  p.ID,
		"role": p.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SessionSecret))
}
