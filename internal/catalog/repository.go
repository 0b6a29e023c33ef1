package catalog

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrServiceNotFound = errors.New("service not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name, description string, durationMinutes int, priceCents int64) (*Service, error) {
	query := `
		INSERT INTO services (name, description, duration_minutes, price_cents)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, duration_minutes, price_cents, is_active, created_at
	`

	var service Service
	err := r.db.GetContext(ctx, &service, query, name, description, durationMinutes, priceCents)
	if err != nil {
		return nil, err
	}

	return &service, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Service, error) {
	query := `
		SELECT id, name, description, duration_minutes, price_cents, is_active, created_at
		FROM services
		WHERE is_active = TRUE
		ORDER BY name ASC
	`

	var services []Service
	err := r.db.SelectContext(ctx, &services, query)
	if err != nil {
		return nil, err
	}

	return services, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Service, error) {
	query := `
		SELECT id, name, description, duration_minutes, price_cents, is_active, created_at
		FROM services
		WHERE id = $1
	`

	var service Service
	err := r.db.GetContext(ctx, &service, query, id)
	if err != nil {
		return nil, err
	}

	return &service, nil
}

func (r *repository) Update(ctx context.Context, id int, name, description string, durationMinutes int, priceCents int64) (*Service, error) {
	query := `
		UPDATE services
		SET name = $2, description = $3, duration_minutes = $4, price_cents = $5
		WHERE id = $1
		RETURNING id, name, description, duration_minutes, price_cents, is_active, created_at
	`

	var service Service
	err := r.db.GetContext(ctx, &service, query, id, name, description, durationMinutes, priceCents)
	if err != nil {
		return nil, err
	}

	return &service, nil
}

func (r *repository) Deactivate(ctx context.Context, id int) error {
	query := `UPDATE services SET is_active = FALSE WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}
