package catalog

import "time"

// Service is a bookable offering. Duration is informational; the slot
// grid length is fixed by policy, not by the service duration.
type Service struct {
	ID              int       `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Description     string    `db:"description" json:"description"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	PriceCents      int64     `db:"price_cents" json:"price_cents"`
	IsActive        bool      `db:"is_active" json:"is_active"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required,min=2,max=100"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
	PriceCents      int64  `json:"price_cents" binding:"required,min=0"`
}

type UpdateServiceRequest struct {
	Name            string `json:"name" binding:"required,min=2,max=100"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
	PriceCents      int64  `json:"price_cents" binding:"required,min=0"`
}
