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

func TestUmbrellaRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewUmbrellaRepository(db)
	ctx := context.Background()

	t.Run("UndockedUmbrellaKeepsNilStation", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"umbrella_id", "size", "color", "current_station_id", "current_station_name"}).
			AddRow(1, "Small", "Red", 2, "Central").
			AddRow(2, "Large", "Blue", nil, nil)

		mock.ExpectQuery("SELECT (.+) FROM umbrellas u\\s+LEFT JOIN stations s ON u.current_station_id = s.station_id").
			WillReturnRows(rows)

		umbrellas, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, umbrellas, 2)
		assert.Equal(t, "Central", *umbrellas[0].CurrentStationName)
		assert.Nil(t, umbrellas[1].CurrentStationID)
		assert.Nil(t, umbrellas[1].CurrentStationName)
	})
}

func TestUmbrellaRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewUmbrellaRepository(db)
	ctx := context.Background()

	stationID := int32(2)
	umbrella := &domain.Umbrella{Size: domain.UmbrellaSizeMedium, Color: "Yellow", CurrentStationID: &stationID}

	mock.ExpectQuery("INSERT INTO umbrellas").
		WithArgs(umbrella.Size, umbrella.Color, umbrella.CurrentStationID).
		WillReturnRows(sqlmock.NewRows([]string{"umbrella_id"}).AddRow(5))

	err = repo.Create(ctx, umbrella)
	assert.NoError(t, err)
	assert.Equal(t, int32(5), umbrella.UmbrellaID)
}

func TestUmbrellaRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewUmbrellaRepository(db)
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM umbrellas WHERE umbrella_id = \\$1").
			WithArgs(int32(42)).
			WillReturnRows(sqlmock.NewRows([]string{"umbrella_id", "size", "color", "current_station_id"}))

		umbrella, err := repo.GetByID(ctx, 42)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, umbrella)
	})
}

func TestUmbrellaRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewUmbrellaRepository(db)
	ctx := context.Background()

	t.Run("UndockViaNilStation", func(t *testing.T) {
		mock.ExpectExec("UPDATE umbrellas SET").
			WithArgs(domain.UmbrellaSizeSmall, "Red", nil, int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, &domain.Umbrella{UmbrellaID: 1, Size: domain.UmbrellaSizeSmall, Color: "Red", CurrentStationID: nil})
		assert.NoError(t, err)
	})
}
