package repository

import (
	"context"
	"errors"

	"umbrella-fleet-backend/internal/domain"
)

// ErrNotFound is returned when a get targets a missing key or when an update
// or delete affects zero rows.
var ErrNotFound = errors.New("record not found")

type StationRepository interface {
	List(ctx context.Context) ([]domain.Station, error)
	GetByID(ctx context.Context, id int32) (*domain.Station, error)
	Create(ctx context.Context, s *domain.Station) error
	Update(ctx context.Context, s *domain.Station) error
	Delete(ctx context.Context, id int32) error
}

type UmbrellaRepository interface {
	List(ctx context.Context) ([]domain.Umbrella, error)
	GetByID(ctx context.Context, id int32) (*domain.Umbrella, error)
	Create(ctx context.Context, u *domain.Umbrella) error
	Update(ctx context.Context, u *domain.Umbrella) error
	Delete(ctx context.Context, id int32) error
}

type AccountRepository interface {
	List(ctx context.Context) ([]domain.Account, error)
	GetByID(ctx context.Context, id int32) (*domain.Account, error)
	Create(ctx context.Context, a *domain.Account) error
	Update(ctx context.Context, a *domain.Account) error
	Delete(ctx context.Context, id int32) error
}

type PaymentMethodRepository interface {
	List(ctx context.Context) ([]domain.PaymentMethod, error)
	ListCardIDs(ctx context.Context) ([]int32, error)
	GetByID(ctx context.Context, id int32) (*domain.PaymentMethod, error)
	Create(ctx context.Context, p *domain.PaymentMethod) error
	Delete(ctx context.Context, id int32) error
}

type MaintainerRepository interface {
	List(ctx context.Context) ([]domain.Maintainer, error)
	GetByID(ctx context.Context, id int32) (*domain.Maintainer, error)
	Create(ctx context.Context, m *domain.Maintainer) error
	Update(ctx context.Context, m *domain.Maintainer) error
	Delete(ctx context.Context, id int32) error
}

type MaintenanceHistoryRepository interface {
	List(ctx context.Context) ([]domain.MaintenanceHistoryView, error)
	GetByID(ctx context.Context, id int32) (*domain.MaintenanceHistory, error)
	Create(ctx context.Context, h *domain.MaintenanceHistory) error
	Update(ctx context.Context, h *domain.MaintenanceHistory) error
	Delete(ctx context.Context, id int32) error
}

type RentalHistoryRepository interface {
	List(ctx context.Context) ([]domain.RentalHistoryView, error)
	GetByID(ctx context.Context, id int32) (*domain.RentalHistoryDetail, error)
	Create(ctx context.Context, r *domain.RentalHistory) error
	Update(ctx context.Context, r *domain.RentalHistory) error
	Delete(ctx context.Context, id int32) error
	Heatmap(ctx context.Context) ([]domain.HeatmapPoint, error)
}
