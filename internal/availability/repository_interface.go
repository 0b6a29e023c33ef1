package availability

import "context"

type Repository interface {
	// EnsureDay inserts any generated interval missing for the
	// service/date and reports how many rows were created. Existing
	// rows are never touched.
	EnsureDay(ctx context.Context, serviceID int, date string, intervals []Interval) (int, error)
	ListActiveByServiceAndDate(ctx context.Context, serviceID int, date string) ([]Availability, error)
	GetByID(ctx context.Context, id int) (*Availability, error)
}
