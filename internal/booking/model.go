package booking

import "time"

const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
)

// Booking keeps its own snapshot of date/start/end captured at creation
// time. AvailabilityID is the mutable slot claim: set while the booking
// holds the slot, nulled on cancellation. The snapshot never changes, so
// cancelled and past bookings still display their historical time.
type Booking struct {
	ID             int       `db:"id" json:"id"`
	UserID         int       `db:"user_id" json:"user_id"`
	ServiceID      int       `db:"service_id" json:"service_id"`
	AvailabilityID *int      `db:"availability_id" json:"availability_id"`
	Date           string    `db:"date" json:"date"`
	StartTime      string    `db:"start_time" json:"start_time"`
	EndTime        string    `db:"end_time" json:"end_time"`
	Status         string    `db:"status" json:"status"`
	Notes          string    `db:"notes" json:"notes"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type BookingWithDetails struct {
	Booking
	ServiceName string `db:"service_name" json:"service_name"`
	UserName    string `db:"user_name" json:"user_name"`
	UserEmail   string `db:"user_email" json:"user_email"`
}

// TimeRange is a booked snapshot interval loaded for overlap filtering.
type TimeRange struct {
	StartTime string `db:"start_time" json:"start_time"`
	EndTime   string `db:"end_time" json:"end_time"`
}

type CreateBookingRequest struct {
	ServiceID      int    `json:"service_id" binding:"required"`
	AvailabilityID int    `json:"availability_id" binding:"required"`
	Notes          string `json:"notes"`
}
