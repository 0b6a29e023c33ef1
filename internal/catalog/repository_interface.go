package catalog

import "context"

type Repository interface {
	Create(ctx context.Context, name, description string, durationMinutes int, priceCents int64) (*Service, error)
	GetAll(ctx context.Context) ([]Service, error)
	GetByID(ctx context.Context, id int) (*Service, error)
	Update(ctx context.Context, id int, name, description string, durationMinutes int, priceCents int64) (*Service, error)
	Deactivate(ctx context.Context, id int) error
}
