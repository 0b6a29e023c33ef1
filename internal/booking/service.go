package booking

import (
	"context"
	"time"

	"github.com/GeoTsinganos/booking-system-api/internal/apperr"
	"github.com/GeoTsinganos/booking-system-api/internal/auth"
	"github.com/GeoTsinganos/booking-system-api/internal/availability"
	"github.com/GeoTsinganos/booking-system-api/internal/catalog"
	"github.com/GeoTsinganos/booking-system-api/internal/metrics"
)

// All bookings compete for one shared calendar: conflict detection
// ignores service and user identity.
type Service interface {
	Create(ctx context.Context, actor auth.Identity, req CreateBookingRequest) (*Booking, error)
	Cancel(ctx context.Context, actor auth.Identity, bookingID int) (*Booking, error)
	Confirm(ctx context.Context, actor auth.Identity, bookingID int) (*Booking, error)
	AvailableSlots(ctx context.Context, serviceID int, date string) ([]availability.Availability, error)
	GetUserBookings(ctx context.Context, userID int) ([]Booking, error)
	GetBookingsByDate(ctx context.Context, date string) ([]BookingWithDetails, error)
	GetBookingsByService(ctx context.Context, serviceID int) ([]BookingWithDetails, error)
}

type service struct {
	repo        Repository
	slotRepo    availability.Repository
	catalogRepo catalog.Repository
}

func NewService(repo Repository, slotRepo availability.Repository, catalogRepo catalog.Repository) Service {
	return &service{
		repo:        repo,
		slotRepo:    slotRepo,
		catalogRepo: catalogRepo,
	}
}

// requireAdmin is the single permission gate for admin-only mutations.
func requireAdmin(actor auth.Identity) error {
	if !actor.IsAdmin {
		return apperr.Permission("admin privileges required")
	}
	return nil
}

func (s *service) Create(ctx context.Context, actor auth.Identity, req CreateBookingRequest) (*Booking, error) {
	slot, err := s.slotRepo.GetByID(ctx, req.AvailabilityID)
	if err != nil {
		return nil, apperr.NotFound("availability not found")
	}

	if slot.ServiceID != req.ServiceID {
		return nil, apperr.Validation("availability does not belong to the given service")
	}

	claimed, err := s.repo.SlotClaimed(ctx, req.AvailabilityID)
	if err != nil {
		return nil, err
	}
	if claimed {
		metrics.RecordBookingConflict()
		return nil, apperr.Conflict("slot already booked")
	}

	conflict, err := s.repo.HasConflict(ctx, slot.Date, slot.StartTime, slot.EndTime, 0)
	if err != nil {
		return nil, err
	}
	if conflict {
		metrics.RecordBookingConflict()
		return nil, apperr.Conflict("slot already booked")
	}

	// The insert claims the slot and snapshots its interval in one
	// atomic write; the storage uniqueness constraint closes the race
	// window left by the checks above.
	booking, err := s.repo.CreateBooking(ctx, actor.ID, req.ServiceID, req.AvailabilityID, slot.Date, slot.StartTime, slot.EndTime, req.Notes)
	if err != nil {
		if err == ErrSlotAlreadyBooked {
			metrics.RecordBookingConflict()
			return nil, apperr.Conflict("slot already booked")
		}
		return nil, err
	}

	metrics.RecordBooking(booking.Status)
	return booking, nil
}

func (s *service) Cancel(ctx context.Context, actor auth.Identity, bookingID int) (*Booking, error) {
	booking, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, apperr.NotFound("booking not found")
	}

	if booking.UserID != actor.ID && !actor.IsAdmin {
		return nil, apperr.Permission("you cannot cancel this booking")
	}

	if booking.Status == StatusCancelled {
		return nil, apperr.Validation("booking already cancelled")
	}

	if booking.AvailabilityID != nil {
		startAt, err := time.ParseInLocation(
			availability.DateLayout+" "+availability.TimeLayout,
			booking.Date+" "+booking.StartTime,
			time.Local,
		)
		if err != nil {
			return nil, err
		}
		if !startAt.After(time.Now()) {
			return nil, apperr.Permission("cannot cancel past booking")
		}
	}

	cancelled, err := s.repo.CancelBooking(ctx, bookingID)
	if err != nil {
		if err == ErrBookingCancelled {
			return nil, apperr.Validation("booking already cancelled")
		}
		return nil, err
	}

	metrics.RecordBookingCancellation()
	return cancelled, nil
}

func (s *service) Confirm(ctx context.Context, actor auth.Identity, bookingID int) (*Booking, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	booking, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, apperr.NotFound("booking not found")
	}

	if booking.Status == StatusCancelled {
		return nil, apperr.Validation("cannot confirm a cancelled booking")
	}

	// Re-confirming is a success no-op.
	if booking.Status == StatusConfirmed {
		return booking, nil
	}

	confirmed, err := s.repo.ConfirmBooking(ctx, bookingID)
	if err != nil {
		if err == ErrBookingCancelled {
			return nil, apperr.Validation("cannot confirm a cancelled booking")
		}
		return nil, err
	}

	return confirmed, nil
}

func (s *service) AvailableSlots(ctx context.Context, serviceID int, date string) ([]availability.Availability, error) {
	if _, err := time.Parse(availability.DateLayout, date); err != nil {
		return nil, apperr.Validation("invalid date, expected YYYY-MM-DD")
	}

	if _, err := s.catalogRepo.GetByID(ctx, serviceID); err != nil {
		return nil, apperr.NotFound("service not found")
	}

	created, err := s.slotRepo.EnsureDay(ctx, serviceID, date, availability.Generate())
	if err != nil {
		return nil, err
	}
	if created > 0 {
		metrics.RecordSlotsGenerated(created)
	}

	slots, err := s.slotRepo.ListActiveByServiceAndDate(ctx, serviceID, date)
	if err != nil {
		return nil, err
	}

	booked, err := s.repo.ListActiveIntervalsByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	free := make([]availability.Availability, 0, len(slots))
	for _, slot := range slots {
		if !overlapsAny(slot.StartTime, slot.EndTime, booked) {
			free = append(free, slot)
		}
	}

	return free, nil
}

func (s *service) GetUserBookings(ctx context.Context, userID int) ([]Booking, error) {
	return s.repo.GetUserBookings(ctx, userID)
}

func (s *service) GetBookingsByDate(ctx context.Context, date string) ([]BookingWithDetails, error) {
	if _, err := time.Parse(availability.DateLayout, date); err != nil {
		return nil, apperr.Validation("invalid date, expected YYYY-MM-DD")
	}
	return s.repo.GetBookingsByDate(ctx, date)
}

func (s *service) GetBookingsByService(ctx context.Context, serviceID int) ([]BookingWithDetails, error) {
	return s.repo.GetBookingsByService(ctx, serviceID)
}

// overlapsAny applies the half-open overlap rule against every booked
// interval; touching endpoints do not overlap.
func overlapsAny(start, end string, booked []TimeRange) bool {
	for _, b := range booked {
		if start < b.EndTime && end > b.StartTime {
			return true
		}
	}
	return false
}
