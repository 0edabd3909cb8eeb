package postgres

import (
	"database/sql"

	"umbrella-fleet-backend/internal/repository"

	_ "github.com/lib/pq"
)

// Store bundles every repository over one shared *sql.DB. The pool is owned
// by the caller; Store never opens or closes connections itself.
type Store struct {
	db *sql.DB
	repository.StationRepository
	repository.UmbrellaRepository
	repository.AccountRepository
	repository.PaymentMethodRepository
	repository.MaintainerRepository
	repository.MaintenanceHistoryRepository
	repository.RentalHistoryRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                           db,
		StationRepository:            NewStationRepository(db),
		UmbrellaRepository:           NewUmbrellaRepository(db),
		AccountRepository:            NewAccountRepository(db),
		PaymentMethodRepository:      NewPaymentMethodRepository(db),
		MaintainerRepository:         NewMaintainerRepository(db),
		MaintenanceHistoryRepository: NewMaintenanceHistoryRepository(db),
		RentalHistoryRepository:      NewRentalHistoryRepository(db),
	}
}

// Ping reports whether the store is reachable.
func (s *Store) Ping() error {
	return s.db.Ping()
}
