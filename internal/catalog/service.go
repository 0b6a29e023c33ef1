package catalog

import (
	"context"

	"github.com/GeoTsinganos/booking-system-api/internal/apperr"
)

type CatalogService interface {
	Create(ctx context.Context, req CreateServiceRequest) (*Service, error)
	GetAll(ctx context.Context) ([]Service, error)
	GetByID(ctx context.Context, id int) (*Service, error)
	Update(ctx context.Context, id int, req UpdateServiceRequest) (*Service, error)
	Deactivate(ctx context.Context, id int) error
}

type catalogService struct {
	repo  Repository
	cache *Cache
}

func NewService(repo Repository, cache *Cache) CatalogService {
	return &catalogService{
		repo:  repo,
		cache: cache,
	}
}

func (s *catalogService) Create(ctx context.Context, req CreateServiceRequest) (*Service, error) {
	service, err := s.repo.Create(ctx, req.Name, req.Description, req.DurationMinutes, req.PriceCents)
	if err != nil {
		return nil, err
	}

	s.cache.SetService(ctx, service)
	return service, nil
}

func (s *catalogService) GetAll(ctx context.Context) ([]Service, error) {
	return s.repo.GetAll(ctx)
}

func (s *catalogService) GetByID(ctx context.Context, id int) (*Service, error) {
	if cached, ok := s.cache.GetService(ctx, id); ok {
		return cached, nil
	}

	service, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("service not found")
	}

	s.cache.SetService(ctx, service)
	return service, nil
}

func (s *catalogService) Update(ctx context.Context, id int, req UpdateServiceRequest) (*Service, error) {
	service, err := s.repo.Update(ctx, id, req.Name, req.Description, req.DurationMinutes, req.PriceCents)
	if err != nil {
		return nil, apperr.NotFound("service not found")
	}

	s.cache.InvalidateService(ctx, id)
	return service, nil
}

func (s *catalogService) Deactivate(ctx context.Context, id int) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		if err == ErrServiceNotFound {
			return apperr.NotFound("service not found")
		}
		return err
	}

	s.cache.InvalidateService(ctx, id)
	return nil
}
