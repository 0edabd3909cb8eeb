package service

import (
	"context"

	"umbrella-fleet-backend/internal/domain"
	"umbrella-fleet-backend/internal/repository"
)

type maintainerService struct {
	maintainerRepo repository.MaintainerRepository
}

func NewMaintainerService(maintainerRepo repository.MaintainerRepository) MaintainerService {
	return &maintainerService{maintainerRepo: maintainerRepo}
}

func (s *maintainerService) ListMaintainers(ctx context.Context) ([]domain.Maintainer, error) {
	return s.maintainerRepo.List(ctx)
}

func (s *maintainerService) GetMaintainer(ctx context.Context, id int32) (*domain.Maintainer, error) {
	return s.maintainerRepo.GetByID(ctx, id)
}

func (s *maintainerService) CreateMaintainer(ctx context.Context, m *domain.Maintainer) error {
	m.DateOfBirth = normalizeDate(m.DateOfBirth)
	return s.maintainerRepo.Create(ctx, m)
}

func (s *maintainerService) UpdateMaintainer(ctx context.Context, m *domain.Maintainer) error {
	m.DateOfBirth = normalizeDate(m.DateOfBirth)
	return s.maintainerRepo.Update(ctx, m)
}

func (s *maintainerService) DeleteMaintainer(ctx context.Context, id int32) error {
	return s.maintainerRepo.Delete(ctx, id)
}
