package postgres_test

import (
	"context"
	"testing"

	"umbrella-fleet-backend/internal/domain"
	"umbrella-fleet-backend/internal/repository"
	"umbrella-fleet-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestStationRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewStationRepository(db)
	ctx := context.Background()

	t.Run("ComputesCurrentStock", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"station_id", "station_name", "latitude", "longitude", "capacity", "current_stock"}).
			AddRow(1, "Central", 18.79, 98.95, 10, 3).
			AddRow(2, "Riverside", 18.78, 98.99, 6, 0)

		mock.ExpectQuery("SELECT (.+) FROM stations s\\s+LEFT JOIN umbrellas u ON s.station_id = u.current_station_id").
			WillReturnRows(rows)

		stations, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, stations, 2)
		assert.Equal(t, int32(3), stations[0].CurrentStock)
		assert.Equal(t, int32(0), stations[1].CurrentStock)
	})
}

func TestStationRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewStationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"station_id", "station_name", "latitude", "longitude", "capacity", "current_stock"}).
			AddRow(1, "Central", 18.79, 98.95, 10, 1)

		mock.ExpectQuery("SELECT (.+) FROM stations s(.+)WHERE s.station_id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		station, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "Central", station.StationName)
		assert.Equal(t, int32(1), station.CurrentStock)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM stations s(.+)WHERE s.station_id = \\$1").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"station_id", "station_name", "latitude", "longitude", "capacity", "current_stock"}))

		station, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, station)
	})
}

func TestStationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewStationRepository(db)
	ctx := context.Background()

	station := &domain.Station{StationName: "Central", Latitude: 18.79, Longitude: 98.95, Capacity: 10}

	mock.ExpectQuery("INSERT INTO stations").
		WithArgs(station.StationName, station.Latitude, station.Longitude, station.Capacity).
		WillReturnRows(sqlmock.NewRows([]string{"station_id"}).AddRow(7))

	err = repo.Create(ctx, station)
	assert.NoError(t, err)
	assert.Equal(t, int32(7), station.StationID)
}

func TestStationRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewStationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE stations SET").
			WithArgs("Central", 18.79, 98.95, int32(12), int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, &domain.Station{StationID: 1, StationName: "Central", Latitude: 18.79, Longitude: 98.95, Capacity: 12})
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE stations SET").
			WithArgs("Nowhere", 0.0, 0.0, int32(1), int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, &domain.Station{StationID: 99, StationName: "Nowhere", Capacity: 1})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestStationRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewStationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM stations WHERE station_id = \\$1").
			WithArgs(int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 1))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM stations WHERE station_id = \\$1").
			WithArgs(int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 99), repository.ErrNotFound)
	})
}
