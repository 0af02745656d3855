package services

import (
	"context"

	"github.com/neocontrole/authserver/types"
)

// EstablishmentRepository defines persistence operations for establishments.
type EstablishmentRepository interface {
	List(ctx context.Context) ([]types.Establishment, error)
	GetByID(ctx context.Context, id string) (types.Establishment, error)
	Update(ctx context.Context, est types.Establishment) (types.Establishment, error)
}

// EstablishmentService encapsulates establishment use-cases.
type EstablishmentService struct {
	repo EstablishmentRepository
}

func NewEstablishmentService(repo EstablishmentRepository) *EstablishmentService {
	return &EstablishmentService{repo: repo}
}

func (s *EstablishmentService) List(ctx context.Context) ([]types.Establishment, error) {
	return s.repo.List(ctx)
}

func (s *EstablishmentService) GetByID(ctx context.Context, id string) (types.Establishment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EstablishmentService) Update(ctx context.Context, est types.Establishment) (types.Establishment, error) {
	return s.repo.Update(ctx, est)
}
