package postgres_test

import (
	"context"
	"testing"
	"time"

	"umbrella-fleet-backend/internal/domain"
	"umbrella-fleet-backend/internal/repository"
	"umbrella-fleet-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestMaintenanceHistoryRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewMaintenanceHistoryRepository(db)
	ctx := context.Background()

	at := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"maintenance_history_id", "maintenance_time", "report", "maintainer_id", "maintainer_name", "maintainer_last_name", "station_id", "station_name"}).
		AddRow(1, at, "Replaced lock", 2, "Joe", "Doe", 3, "Central")

	mock.ExpectQuery("SELECT (.+) FROM maintenance_histories mh\\s+JOIN maintainers m(.+)JOIN stations s").
		WillReturnRows(rows)

	histories, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, histories, 1)
	assert.Equal(t, "2024-03-01 08:00:00", histories[0].MaintenanceTime)
	assert.Equal(t, "Joe", histories[0].MaintainerName)
	assert.Equal(t, "Central", histories[0].StationName)
}

func TestMaintenanceHistoryRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewMaintenanceHistoryRepository(db)
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE maintenance_histories SET").
			WithArgs("2024-03-01 08:00:00", int32(2), int32(3), "Replaced lock", int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, &domain.MaintenanceHistory{
			MaintenanceHistoryID: 99,
			MaintenanceTime:      "2024-03-01 08:00:00",
			MaintainerID:         2,
			StationID:            3,
			Report:               "Replaced lock",
		})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
