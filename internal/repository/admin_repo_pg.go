package repository

import (
	"context"
	"errors"

	"github.com/cityworks/facilitybooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

type PGAdminRepository struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) AdminRepository {
	return &PGAdminRepository{db: db}
}

func (r *PGAdminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	return r.db.QueryRow(ctx, `INSERT INTO admins (username, password_hash, full_name, email)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		admin.Username, admin.PasswordHash, admin.FullName, admin.Email).
		Scan(&admin.ID)
}

func (r *PGAdminRepository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	row := r.db.QueryRow(ctx, `SELECT id, username, password_hash, full_name, email FROM admins WHERE username=$1`, username)
	var a domain.Admin
	if err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.FullName, &a.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *PGAdminRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM admins WHERE username=$1)`, username).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

var _ AdminRepository = (*PGAdminRepository)(nil)
