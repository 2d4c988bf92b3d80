package repository

import (
	"context"
	"errors"

	"github.com/cityworks/facilitybooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	List(ctx context.Context) ([]domain.Booking, error)
	ListByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, adminNotes string) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingWithFacilitySelect = `SELECT
	b.id, b.facility_id, b.requester_name, b.requester_email, b.requester_phone,
	b.booking_date, b.start_time, b.end_time, b.purpose, b.expected_attendees,
	b.status, b.request_date, b.admin_notes,
	f.id, f.name, f.type, f.location, f.description, f.capacity, f.amenities, f.status, f.created_date
FROM bookings b
JOIN facilities f ON f.id = b.facility_id`

func scanBookingWithFacility(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	var f domain.Facility
	if err := row.Scan(
		&b.ID, &b.FacilityID, &b.RequesterName, &b.RequesterEmail, &b.RequesterPhone,
		&b.BookingDate, &b.StartTime, &b.EndTime, &b.Purpose, &b.ExpectedAttendees,
		&b.Status, &b.RequestDate, &b.AdminNotes,
		&f.ID, &f.Name, &f.Type, &f.Location, &f.Description, &f.Capacity, &f.Amenities, &f.Status, &f.CreatedDate,
	); err != nil {
		return nil, err
	}
	b.Facility = &f
	return &b, nil
}

func (r *PGBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	return r.queryBookings(ctx, bookingWithFacilitySelect+` ORDER BY b.request_date DESC`)
}

func (r *PGBookingRepository) ListByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	return r.queryBookings(ctx, bookingWithFacilitySelect+` WHERE b.status=$1 ORDER BY b.request_date DESC`, status)
}

func (r *PGBookingRepository) queryBookings(ctx context.Context, sql string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBookingWithFacility(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := scanBookingWithFacility(r.db.QueryRow(ctx, bookingWithFacilitySelect+` WHERE b.id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return r.db.QueryRow(ctx, `INSERT INTO bookings
		(facility_id, requester_name, requester_email, requester_phone, booking_date, start_time, end_time, purpose, expected_attendees, status, admin_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, request_date`,
		booking.FacilityID, booking.RequesterName, booking.RequesterEmail, booking.RequesterPhone,
		booking.BookingDate, booking.StartTime, booking.EndTime, booking.Purpose, booking.ExpectedAttendees,
		booking.Status, booking.AdminNotes).
		Scan(&booking.ID, &booking.RequestDate)
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, adminNotes string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$1, admin_notes=$2 WHERE id=$3
		RETURNING id, facility_id, requester_name, requester_email, requester_phone, booking_date, start_time, end_time, purpose, expected_attendees, status, request_date, admin_notes`,
		status, adminNotes, id)
	var b domain.Booking
	if err := row.Scan(
		&b.ID, &b.FacilityID, &b.RequesterName, &b.RequesterEmail, &b.RequesterPhone,
		&b.BookingDate, &b.StartTime, &b.EndTime, &b.Purpose, &b.ExpectedAttendees,
		&b.Status, &b.RequestDate, &b.AdminNotes,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
