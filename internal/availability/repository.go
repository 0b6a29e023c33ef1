package availability

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) EnsureDay(ctx context.Context, serviceID int, date string, intervals []Interval) (int, error) {
	// ON CONFLICT against the natural key makes repeated generation
	// idempotent regardless of interleaving with other requests.
	query := `
		INSERT INTO availabilities (service_id, date, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ON CONSTRAINT uniq_service_date_time_slot DO NOTHING
	`

	created := 0
	for _, iv := range intervals {
		result, err := r.db.ExecContext(ctx, query, serviceID, date, iv.Start, iv.End)
		if err != nil {
			return created, err
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return created, err
		}
		created += int(rowsAffected)
	}

	return created, nil
}

func (r *repository) ListActiveByServiceAndDate(ctx context.Context, serviceID int, date string) ([]Availability, error) {
	query := `
		SELECT id, service_id, date, start_time, end_time, is_active, created_at
		FROM availabilities
		WHERE service_id = $1 AND date = $2 AND is_active = TRUE
		ORDER BY start_time ASC
	`

	var slots []Availability
	err := r.db.SelectContext(ctx, &slots, query, serviceID, date)
	if err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Availability, error) {
	query := `
		SELECT id, service_id, date, start_time, end_time, is_active, created_at
		FROM availabilities
		WHERE id = $1
	`

	var slot Availability
	err := r.db.GetContext(ctx, &slot, query, id)
	if err != nil {
		return nil, err
	}

	return &slot, nil
}
