package availability

import "time"

// Dates are "YYYY-MM-DD", clock times zero-padded "HH:MM". Both compare
// lexicographically in chronological order.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Availability struct {
	ID        int       `db:"id" json:"id"`
	ServiceID int       `db:"service_id" json:"service_id"`
	Date      string    `db:"date" json:"date"`
	StartTime string    `db:"start_time" json:"start_time"`
	EndTime   string    `db:"end_time" json:"end_time"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Interval is a half-open [Start, End) candidate slot produced by the
// generator before it is persisted.
type Interval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
