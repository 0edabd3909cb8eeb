package service

import (
	"context"

	"umbrella-fleet-backend/internal/domain"
	"umbrella-fleet-backend/internal/repository"
)

type stationService struct {
	stationRepo repository.StationRepository
}

func NewStationService(stationRepo repository.StationRepository) StationService {
	return &stationService{stationRepo: stationRepo}
}

func (s *stationService) ListStations(ctx context.Context) ([]domain.Station, error) {
	return s.stationRepo.List(ctx)
}

func (s *stationService) GetStation(ctx context.Context, id int32) (*domain.Station, error) {
	return s.stationRepo.GetByID(ctx, id)
}

func (s *stationService) CreateStation(ctx context.Context, st *domain.Station) error {
	return s.stationRepo.Create(ctx, st)
}

func (s *stationService) UpdateStation(ctx context.Context, st *domain.Station) error {
	return s.stationRepo.Update(ctx, st)
}

func (s *stationService) DeleteStation(ctx context.Context, id int32) error {
	return s.stationRepo.Delete(ctx, id)
}
