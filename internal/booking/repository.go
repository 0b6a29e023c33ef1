package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/GeoTsinganos/booking-system-api/internal/db"

	"github.com/jmoiron/sqlx"
)

var (
	ErrSlotAlreadyBooked = errors.New("slot already booked")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingCancelled  = errors.New("booking already cancelled")
)

const slotClaimConstraint = "uniq_active_booking_per_slot"

const bookingColumns = "id, user_id, service_id, availability_id, date, start_time, end_time, status, notes, created_at"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateBooking(ctx context.Context, userID, serviceID, availabilityID int, date, startTime, endTime, notes string) (*Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO bookings (user_id, service_id, availability_id, date, start_time, end_time, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, 'PENDING', $7)
		RETURNING ` + bookingColumns

	var booking Booking
	err = tx.GetContext(ctx, &booking, query, userID, serviceID, availabilityID, date, startTime, endTime, notes)
	if err != nil {
		if db.IsUniqueViolation(err, slotClaimConstraint) {
			return nil, ErrSlotAlreadyBooked
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		if db.IsUniqueViolation(err, slotClaimConstraint) {
			return nil, ErrSlotAlreadyBooked
		}
		return nil, err
	}

	return &booking, nil
}

func (r *repository) GetBookingByID(ctx context.Context, id int) (*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *repository) CancelBooking(ctx context.Context, id int) (*Booking, error) {
	// Status flip and slot release commit together; snapshot columns
	// are untouched.
	query := `
		UPDATE bookings
		SET status = 'CANCELLED', availability_id = NULL
		WHERE id = $1 AND status <> 'CANCELLED'
		RETURNING ` + bookingColumns

	var booking Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingCancelled
		}
		return nil, err
	}

	return &booking, nil
}

func (r *repository) ConfirmBooking(ctx context.Context, id int) (*Booking, error) {
	query := `
		UPDATE bookings
		SET status = 'CONFIRMED'
		WHERE id = $1 AND status <> 'CANCELLED'
		RETURNING ` + bookingColumns

	var booking Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingCancelled
		}
		return nil, err
	}

	return &booking, nil
}

func (r *repository) SlotClaimed(ctx context.Context, availabilityID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE availability_id = $1 AND status IN ('PENDING', 'CONFIRMED')
		)
	`
	return db.Exists(ctx, r.db, query, availabilityID)
}

func (r *repository) HasConflict(ctx context.Context, date, startTime, endTime string, excludeID int) (bool, error) {
	// Half-open intervals: [s1,e1) and [s2,e2) overlap iff
	// s1 < e2 AND e1 > s2. Zero-padded HH:MM compares lexically.
	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE date = $1
			  AND status IN ('PENDING', 'CONFIRMED')
			  AND start_time < $3
			  AND end_time > $2
			  AND ($4 = 0 OR id <> $4)
		)
	`
	return db.Exists(ctx, r.db, query, date, startTime, endTime, excludeID)
}

func (r *repository) ListActiveIntervalsByDate(ctx context.Context, date string) ([]TimeRange, error) {
	query := `
		SELECT start_time, end_time
		FROM bookings
		WHERE date = $1 AND status IN ('PENDING', 'CONFIRMED')
		ORDER BY start_time ASC
	`

	var ranges []TimeRange
	err := r.db.SelectContext(ctx, &ranges, query, date)
	if err != nil {
		return nil, err
	}

	return ranges, nil
}

func (r *repository) GetUserBookings(ctx context.Context, userID int) ([]Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, userID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) GetBookingsByDate(ctx context.Context, date string) ([]BookingWithDetails, error) {
	query := `
		SELECT
			b.id,
			b.user_id,
			b.service_id,
			b.availability_id,
			b.date,
			b.start_time,
			b.end_time,
			b.status,
			b.notes,
			b.created_at,
			s.name AS service_name,
			u.name AS user_name,
			u.email AS user_email
		FROM bookings b
		JOIN services s ON b.service_id = s.id
		JOIN users u ON b.user_id = u.id
		WHERE b.date = $1
		ORDER BY b.start_time ASC, b.created_at ASC
	`

	var bookings []BookingWithDetails
	err := r.db.SelectContext(ctx, &bookings, query, date)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) GetBookingsByService(ctx context.Context, serviceID int) ([]BookingWithDetails, error) {
	query := `
		SELECT
			b.id,
			b.user_id,
			b.service_id,
			b.availability_id,
			b.date,
			b.start_time,
			b.end_time,
			b.status,
			b.notes,
			b.created_at,
			s.name AS service_name,
			u.name AS user_name,
			u.email AS user_email
		FROM bookings b
		JOIN services s ON b.service_id = s.id
		JOIN users u ON b.user_id = u.id
		WHERE b.service_id = $1
		ORDER BY b.date DESC, b.start_time DESC
	`

	var bookings []BookingWithDetails
	err := r.db.SelectContext(ctx, &bookings, query, serviceID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}
