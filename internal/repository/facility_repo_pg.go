package repository

import (
	"context"
	"errors"

	"github.com/cityworks/facilitybooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FacilityRepository interface {
	List(ctx context.Context) ([]domain.Facility, error)
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
	Create(ctx context.Context, facility *domain.Facility) error
	Update(ctx context.Context, facility *domain.Facility) error
	Delete(ctx context.Context, id int64) error
}

type PGFacilityRepository struct {
	db *pgxpool.Pool
}

func NewFacilityRepository(db *pgxpool.Pool) FacilityRepository {
	return &PGFacilityRepository{db: db}
}

func (r *PGFacilityRepository) List(ctx context.Context) ([]domain.Facility, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, type, location, description, capacity, amenities, status, created_date FROM facilities ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	facilities := make([]domain.Facility, 0)
	for rows.Next() {
		var f domain.Facility
		if err := rows.Scan(&f.ID, &f.Name, &f.Type, &f.Location, &f.Description, &f.Capacity, &f.Amenities, &f.Status, &f.CreatedDate); err != nil {
			return nil, err
		}
		facilities = append(facilities, f)
	}
	return facilities, rows.Err()
}

func (r *PGFacilityRepository) GetByID(ctx context.Context, id int64) (*domain.Facility, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, type, location, description, capacity, amenities, status, created_date FROM facilities WHERE id=$1`, id)
	var f domain.Facility
	if err := row.Scan(&f.ID, &f.Name, &f.Type, &f.Location, &f.Description, &f.Capacity, &f.Amenities, &f.Status, &f.CreatedDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *PGFacilityRepository) Create(ctx context.Context, facility *domain.Facility) error {
	return r.db.QueryRow(ctx, `INSERT INTO facilities (name, type, location, description, capacity, amenities, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_date`,
		facility.Name, facility.Type, facility.Location, facility.Description, facility.Capacity, facility.Amenities, facility.Status).
		Scan(&facility.ID, &facility.CreatedDate)
}

func (r *PGFacilityRepository) Update(ctx context.Context, facility *domain.Facility) error {
	cmd, err := r.db.Exec(ctx, `UPDATE facilities SET name=$1, type=$2, location=$3, description=$4, capacity=$5, amenities=$6, status=$7 WHERE id=$8`,
		facility.Name, facility.Type, facility.Location, facility.Description, facility.Capacity, facility.Amenities, facility.Status, facility.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGFacilityRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM facilities WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ FacilityRepository = (*PGFacilityRepository)(nil)
