package service

import (
	"context"

	"umbrella-fleet-backend/internal/domain"
	"umbrella-fleet-backend/internal/repository"
)

type maintenanceHistoryService struct {
	historyRepo repository.MaintenanceHistoryRepository
}

func NewMaintenanceHistoryService(historyRepo repository.MaintenanceHistoryRepository) MaintenanceHistoryService {
	return &maintenanceHistoryService{historyRepo: historyRepo}
}

func (s *maintenanceHistoryService) ListMaintenanceHistories(ctx context.Context) ([]domain.MaintenanceHistoryView, error) {
	return s.historyRepo.List(ctx)
}

func (s *maintenanceHistoryService) GetMaintenanceHistory(ctx context.Context, id int32) (*domain.MaintenanceHistory, error) {
	return s.historyRepo.GetByID(ctx, id)
}

func (s *maintenanceHistoryService) CreateMaintenanceHistory(ctx context.Context, h *domain.MaintenanceHistory) error {
	h.MaintenanceTime = normalizeDateTime(h.MaintenanceTime)
	return s.historyRepo.Create(ctx, h)
}

func (s *maintenanceHistoryService) UpdateMaintenanceHistory(ctx context.Context, h *domain.MaintenanceHistory) error {
	h.MaintenanceTime = normalizeDateTime(h.MaintenanceTime)
	return s.historyRepo.Update(ctx, h)
}

func (s *maintenanceHistoryService) DeleteMaintenanceHistory(ctx context.Context, id int32) error {
	return s.historyRepo.Delete(ctx, id)
}
