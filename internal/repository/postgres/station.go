package postgres

import (
	"context"
	"database/sql"
	"errors"

	"umbrella-fleet-backend/internal/domain"
	"umbrella-fleet-backend/internal/repository"
)

type stationRepository struct {
	db *sql.DB
}

func NewStationRepository(db *sql.DB) repository.StationRepository {
	return &stationRepository{db: db}
}

// stationSelect recomputes current_stock from the umbrella table on every
// read so the count can never drift from reality.
const stationSelect = `SELECT s.station_id, s.station_name, s.latitude, s.longitude, s.capacity, COUNT(u.umbrella_id) AS current_stock
	FROM stations s
	LEFT JOIN umbrellas u ON s.station_id = u.current_station_id`

func (r *stationRepository) List(ctx context.Context) ([]domain.Station, error) {
	query := stationSelect + `
	GROUP BY s.station_id, s.station_name, s.latitude, s.longitude, s.capacity
	ORDER BY s.station_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stations []domain.Station
	for rows.Next() {
		var s domain.Station
		if err := rows.Scan(&s.StationID, &s.StationName, &s.Latitude, &s.Longitude, &s.Capacity, &s.CurrentStock); err != nil {
			return nil, err
		}
		stations = append(stations, s)
	}
	return stations, rows.Err()
}

func (r *stationRepository) GetByID(ctx context.Context, id int32) (*domain.Station, error) {
	query := stationSelect + `
	WHERE s.station_id = $1
	GROUP BY s.station_id, s.station_name, s.latitude, s.longitude, s.capacity`

	s := &domain.Station{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.StationID, &s.StationName, &s.Latitude, &s.Longitude, &s.Capacity, &s.CurrentStock)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *stationRepository) Create(ctx context.Context, s *domain.Station) error {
	query := `INSERT INTO stations (station_name, latitude, longitude, capacity) VALUES ($1, $2, $3, $4) RETURNING station_id`
	return r.db.QueryRowContext(ctx, query, s.StationName, s.Latitude, s.Longitude, s.Capacity).Scan(&s.StationID)
}

func (r *stationRepository) Update(ctx context.Context, s *domain.Station) error {
	query := `UPDATE stations SET station_name = $1, latitude = $2, longitude = $3, capacity = $4 WHERE station_id = $5`
	res, err := r.db.ExecContext(ctx, query, s.StationName, s.Latitude, s.Longitude, s.Capacity, s.StationID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *stationRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stations WHERE station_id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
