package service

import (
	"context"

	"umbrella-fleet-backend/internal/domain"
)

type StationService interface {
	ListStations(ctx context.Context) ([]domain.Station, error)
	GetStation(ctx context.Context, id int32) (*domain.Station, error)
	CreateStation(ctx context.Context, s *domain.Station) error
	UpdateStation(ctx context.Context, s *domain.Station) error
	DeleteStation(ctx context.Context, id int32) error
}

type UmbrellaService interface {
	ListUmbrellas(ctx context.Context) ([]domain.Umbrella, error)
	GetUmbrella(ctx context.Context, id int32) (*domain.Umbrella, error)
	CreateUmbrella(ctx context.Context, u *domain.Umbrella) error
	UpdateUmbrella(ctx context.Context, u *domain.Umbrella) error
	DeleteUmbrella(ctx context.Context, id int32) error
}

type AccountService interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	GetAccount(ctx context.Context, id int32) (*domain.Account, error)
	CreateAccount(ctx context.Context, a *domain.Account) error
	UpdateAccount(ctx context.Context, a *domain.Account) error
	DeleteAccount(ctx context.Context, id int32) error
}

type PaymentMethodService interface {
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
	ListCardIDs(ctx context.Context) ([]int32, error)
	GetPaymentMethod(ctx context.Context, id int32) (*domain.PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, p *domain.PaymentMethod) error
	DeletePaymentMethod(ctx context.Context, id int32) error
}

type MaintainerService interface {
	ListMaintainers(ctx context.Context) ([]domain.Maintainer, error)
	GetMaintainer(ctx context.Context, id int32) (*domain.Maintainer, error)
	CreateMaintainer(ctx context.Context, m *domain.Maintainer) error
	UpdateMaintainer(ctx context.Context, m *domain.Maintainer) error
	DeleteMaintainer(ctx context.Context, id int32) error
}

type MaintenanceHistoryService interface {
	ListMaintenanceHistories(ctx context.Context) ([]domain.MaintenanceHistoryView, error)
	GetMaintenanceHistory(ctx context.Context, id int32) (*domain.MaintenanceHistory, error)
	CreateMaintenanceHistory(ctx context.Context, h *domain.MaintenanceHistory) error
	UpdateMaintenanceHistory(ctx context.Context, h *domain.MaintenanceHistory) error
	DeleteMaintenanceHistory(ctx context.Context, id int32) error
}

type RentalHistoryService interface {
	ListRentalHistories(ctx context.Context) ([]domain.RentalHistoryView, error)
	GetRentalHistory(ctx context.Context, id int32) (*domain.RentalHistoryDetail, error)
	CreateRentalHistory(ctx context.Context, r *domain.RentalHistory) error
	UpdateRentalHistory(ctx context.Context, r *domain.RentalHistory) error
	DeleteRentalHistory(ctx context.Context, id int32) error
	HeatmapData(ctx context.Context) ([]domain.HeatmapPoint, error)
}
