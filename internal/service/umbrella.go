package service

import (
	"context"

	"umbrella-fleet-backend/internal/domain"
	"umbrella-fleet-backend/internal/repository"
)

type umbrellaService struct {
	umbrellaRepo repository.UmbrellaRepository
}

func NewUmbrellaService(umbrellaRepo repository.UmbrellaRepository) UmbrellaService {
	return &umbrellaService{umbrellaRepo: umbrellaRepo}
}

func (s *umbrellaService) ListUmbrellas(ctx context.Context) ([]domain.Umbrella, error) {
	return s.umbrellaRepo.List(ctx)
}

func (s *umbrellaService) GetUmbrella(ctx context.Context, id int32) (*domain.Umbrella, error) {
	return s.umbrellaRepo.GetByID(ctx, id)
}

func (s *umbrellaService) CreateUmbrella(ctx context.Context, u *domain.Umbrella) error {
	return s.umbrellaRepo.Create(ctx, u)
}

func (s *umbrellaService) UpdateUmbrella(ctx context.Context, u *domain.Umbrella) error {
	return s.umbrellaRepo.Update(ctx, u)
}

func (s *umbrellaService) DeleteUmbrella(ctx context.Context, id int32) error {
	return s.umbrellaRepo.Delete(ctx, id)
}
