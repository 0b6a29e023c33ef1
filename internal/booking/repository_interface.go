package booking

import "context"

type Repository interface {
	// CreateBooking claims the slot and inserts the booking in one
	// atomic write. A losing racer for the same slot gets
	// ErrSlotAlreadyBooked from the storage uniqueness guarantee.
	CreateBooking(ctx context.Context, userID, serviceID, availabilityID int, date, startTime, endTime, notes string) (*Booking, error)
	GetBookingByID(ctx context.Context, id int) (*Booking, error)
	// CancelBooking sets the terminal status and releases the slot
	// reference in the same statement, preserving the snapshot.
	CancelBooking(ctx context.Context, id int) (*Booking, error)
	ConfirmBooking(ctx context.Context, id int) (*Booking, error)
	// SlotClaimed reports whether an active booking holds the slot.
	SlotClaimed(ctx context.Context, availabilityID int) (bool, error)
	// HasConflict reports whether any active booking's snapshot
	// interval on date overlaps [startTime, endTime), half-open,
	// across all services and users. excludeID > 0 leaves that
	// booking out of the conflict set.
	HasConflict(ctx context.Context, date, startTime, endTime string, excludeID int) (bool, error)
	ListActiveIntervalsByDate(ctx context.Context, date string) ([]TimeRange, error)
	GetUserBookings(ctx context.Context, userID int) ([]Booking, error)
	GetBookingsByDate(ctx context.Context, date string) ([]BookingWithDetails, error)
	GetBookingsByService(ctx context.Context, serviceID int) ([]BookingWithDetails, error)
}
