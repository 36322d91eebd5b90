package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/fleetcover/quote-service/internal/models"
)

// AdminUserRepository defines the interface for staff account lookups.
// The caller is responsible for hashing passwords; this repository only
// stores and returns the hash it is given.
type AdminUserRepository interface {
	Create(ctx context.Context, admin *models.AdminUser) error
	GetByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.AdminUser, error)
}

type adminUserRepo struct{ db DB }

func NewAdminUserRepository(db DB) AdminUserRepository {
	return &adminUserRepo{db: db}
}

func (r *adminUserRepo) Create(ctx context.Context, admin *models.AdminUser) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO admin_users (id, username, password_hash, created_at)
		VALUES ($1,$2,$3,$4)
	`, admin.ID, admin.Username, admin.PasswordHash, admin.CreatedAt)
	return err
}

func (r *adminUserRepo) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	row := r.db.QueryRow(ctx, baseSelectAdminUser()+" WHERE username=$1", username)
	return scanAdminUser(row)
}

func (r *adminUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.AdminUser, error) {
	row := r.db.QueryRow(ctx, baseSelectAdminUser()+" WHERE id=$1", id)
	return scanAdminUser(row)
}

func baseSelectAdminUser() string {
	return `SELECT id, username, password_hash, created_at FROM admin_users`
}

func scanAdminUser(row pgx.Row) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := row.Scan(&admin.ID, &admin.Username, &admin.PasswordHash, &admin.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}
