package service

import (
	"context"

	"umbrella-fleet-backend/internal/domain"
	"umbrella-fleet-backend/internal/repository"
)

type rentalHistoryService struct {
	rentalRepo repository.RentalHistoryRepository
}

func NewRentalHistoryService(rentalRepo repository.RentalHistoryRepository) RentalHistoryService {
	return &rentalHistoryService{rentalRepo: rentalRepo}
}

func (s *rentalHistoryService) ListRentalHistories(ctx context.Context) ([]domain.RentalHistoryView, error) {
	return s.rentalRepo.List(ctx)
}

func (s *rentalHistoryService) GetRentalHistory(ctx context.Context, id int32) (*domain.RentalHistoryDetail, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalHistoryService) CreateRentalHistory(ctx context.Context, r *domain.RentalHistory) error {
	r.StartRentalTime = normalizeDateTime(r.StartRentalTime)
	r.EndRentalTime = normalizeOptionalDateTime(r.EndRentalTime)
	return s.rentalRepo.Create(ctx, r)
}

func (s *rentalHistoryService) UpdateRentalHistory(ctx context.Context, r *domain.RentalHistory) error {
	r.StartRentalTime = normalizeDateTime(r.StartRentalTime)
	r.EndRentalTime = normalizeOptionalDateTime(r.EndRentalTime)
	return s.rentalRepo.Update(ctx, r)
}

func (s *rentalHistoryService) DeleteRentalHistory(ctx context.Context, id int32) error {
	return s.rentalRepo.Delete(ctx, id)
}

func (s *rentalHistoryService) HeatmapData(ctx context.Context) ([]domain.HeatmapPoint, error) {
	return s.rentalRepo.Heatmap(ctx)
}
