package repository

import (
	"context"
	"errors"

	"github.com/cityworks/facilitybooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InspectionRepository interface {
	List(ctx context.Context) ([]domain.Inspection, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.Inspection, error)
	GetByID(ctx context.Context, id int64) (*domain.Inspection, error)
	Create(ctx context.Context, inspection *domain.Inspection) error
	Update(ctx context.Context, inspection *domain.Inspection) error
	Delete(ctx context.Context, id int64) error
}

type PGInspectionRepository struct {
	db *pgxpool.Pool
}

func NewInspectionRepository(db *pgxpool.Pool) InspectionRepository {
	return &PGInspectionRepository{db: db}
}

// Reads join the parent booking and its facility so a single inspection
// record carries the full chain the reporting screens render.
const inspectionSelect = `SELECT
	i.id, i.booking_id, i.inspector_name, i.inspector_contact, i.inspection_date,
	i.condition_before, i.condition_after, i.damages_found, i.damage_description, i.damage_photos, i.inspection_notes,
	b.id, b.facility_id, b.requester_name, b.requester_email, b.requester_phone,
	b.booking_date, b.start_time, b.end_time, b.purpose, b.expected_attendees,
	b.status, b.request_date, b.admin_notes,
	f.id, f.name, f.type, f.location, f.description, f.capacity, f.amenities, f.status, f.created_date
FROM inspections i
JOIN bookings b ON b.id = i.booking_id
JOIN facilities f ON f.id = b.facility_id`

func scanInspection(row pgx.Row) (*domain.Inspection, error) {
	var in domain.Inspection
	var b domain.Booking
	var f domain.Facility
	if err := row.Scan(
		&in.ID, &in.BookingID, &in.InspectorName, &in.InspectorContact, &in.InspectionDate,
		&in.ConditionBefore, &in.ConditionAfter, &in.DamagesFound, &in.DamageDescription, &in.DamagePhotos, &in.InspectionNotes,
		&b.ID, &b.FacilityID, &b.RequesterName, &b.RequesterEmail, &b.RequesterPhone,
		&b.BookingDate, &b.StartTime, &b.EndTime, &b.Purpose, &b.ExpectedAttendees,
		&b.Status, &b.RequestDate, &b.AdminNotes,
		&f.ID, &f.Name, &f.Type, &f.Location, &f.Description, &f.Capacity, &f.Amenities, &f.Status, &f.CreatedDate,
	); err != nil {
		return nil, err
	}
	b.Facility = &f
	in.Booking = &b
	return &in, nil
}

func (r *PGInspectionRepository) List(ctx context.Context) ([]domain.Inspection, error) {
	return r.queryInspections(ctx, inspectionSelect+` ORDER BY i.inspection_date DESC`)
}

func (r *PGInspectionRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Inspection, error) {
	return r.queryInspections(ctx, inspectionSelect+` WHERE i.booking_id=$1`, bookingID)
}

func (r *PGInspectionRepository) queryInspections(ctx context.Context, sql string, args ...any) ([]domain.Inspection, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inspections := make([]domain.Inspection, 0)
	for rows.Next() {
		in, err := scanInspection(rows)
		if err != nil {
			return nil, err
		}
		inspections = append(inspections, *in)
	}
	return inspections, rows.Err()
}

func (r *PGInspectionRepository) GetByID(ctx context.Context, id int64) (*domain.Inspection, error) {
	in, err := scanInspection(r.db.QueryRow(ctx, inspectionSelect+` WHERE i.id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return in, nil
}

func (r *PGInspectionRepository) Create(ctx context.Context, inspection *domain.Inspection) error {
	return r.db.QueryRow(ctx, `INSERT INTO inspections
		(booking_id, inspector_name, inspector_contact, condition_before, condition_after, damages_found, damage_description, damage_photos, inspection_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, inspection_date`,
		inspection.BookingID, inspection.InspectorName, inspection.InspectorContact,
		inspection.ConditionBefore, inspection.ConditionAfter, inspection.DamagesFound,
		inspection.DamageDescription, inspection.DamagePhotos, inspection.InspectionNotes).
		Scan(&inspection.ID, &inspection.InspectionDate)
}

func (r *PGInspectionRepository) Update(ctx context.Context, inspection *domain.Inspection) error {
	cmd, err := r.db.Exec(ctx, `UPDATE inspections SET
		inspector_name=$1, inspector_contact=$2, condition_before=$3, condition_after=$4,
		damages_found=$5, damage_description=$6, damage_photos=$7, inspection_notes=$8
		WHERE id=$9`,
		inspection.InspectorName, inspection.InspectorContact, inspection.ConditionBefore, inspection.ConditionAfter,
		inspection.DamagesFound, inspection.DamageDescription, inspection.DamagePhotos, inspection.InspectionNotes,
		inspection.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGInspectionRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM inspections WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ InspectionRepository = (*PGInspectionRepository)(nil)
