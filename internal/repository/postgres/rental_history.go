package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"umbrella-fleet-backend/internal/domain"
	"umbrella-fleet-backend/internal/repository"
)

type rentalHistoryRepository struct {
	db *sql.DB
}

func NewRentalHistoryRepository(db *sql.DB) repository.RentalHistoryRepository {
	return &rentalHistoryRepository{db: db}
}

func (r *rentalHistoryRepository) List(ctx context.Context) ([]domain.RentalHistoryView, error) {
	// Destination is left-joined: active rentals have no destination yet and
	// must still appear in the list.
	query := `SELECT rh.rental_history_id, rh.start_rental_time, rh.end_rental_time, rh.umbrella_id,
		a.account_id, a.first_name, a.last_name,
		ss.station_id AS start_station_id, ss.station_name AS start_station_name,
		ds.station_id AS destination_station_id, ds.station_name AS destination_station_name,
		rh.price
	FROM rental_histories rh
	JOIN accounts a ON rh.account_id = a.account_id
	JOIN stations ss ON rh.start_station_id = ss.station_id
	LEFT JOIN stations ds ON rh.destination_station_id = ds.station_id
	ORDER BY rh.rental_history_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.RentalHistoryView
	for rows.Next() {
		var v domain.RentalHistoryView
		var start time.Time
		var end sql.NullTime
		if err := rows.Scan(&v.RentalHistoryID, &start, &end, &v.UmbrellaID, &v.AccountID, &v.FirstName, &v.LastName,
			&v.StartStationID, &v.StartStationName, &v.DestinationStationID, &v.DestinationStationName, &v.Price); err != nil {
			return nil, err
		}
		v.StartRentalTime = formatDateTime(start)
		v.EndRentalTime = nullableDateTime(end)
		rentals = append(rentals, v)
	}
	return rentals, rows.Err()
}

// GetByID inner-joins the destination station, unlike List. An active rental
// with no destination yet is therefore not reachable here; callers get
// ErrNotFound for it even though it shows in the list.
func (r *rentalHistoryRepository) GetByID(ctx context.Context, id int32) (*domain.RentalHistoryDetail, error) {
	query := `SELECT rh.rental_history_id, rh.account_id, rh.umbrella_id, rh.start_station_id, rh.destination_station_id,
		rh.start_rental_time, rh.end_rental_time,
		a.first_name AS account_first_name, a.last_name AS account_last_name,
		s1.station_name AS start_station_name, s2.station_name AS end_station_name,
		rh.price
	FROM rental_histories rh
	JOIN accounts a ON rh.account_id = a.account_id
	JOIN stations s1 ON rh.start_station_id = s1.station_id
	JOIN stations s2 ON rh.destination_station_id = s2.station_id
	WHERE rh.rental_history_id = $1`

	d := &domain.RentalHistoryDetail{}
	var start time.Time
	var end sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.RentalHistoryID, &d.AccountID, &d.UmbrellaID, &d.StartStationID, &d.DestinationStationID,
		&start, &end, &d.AccountFirstName, &d.AccountLastName, &d.StartStationName, &d.EndStationName, &d.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	d.StartRentalTime = formatDateTime(start)
	d.EndRentalTime = nullableDateTime(end)
	return d, nil
}

func (r *rentalHistoryRepository) Create(ctx context.Context, rh *domain.RentalHistory) error {
	query := `INSERT INTO rental_histories (account_id, umbrella_id, start_station_id, destination_station_id, card_id, start_rental_time, end_rental_time, price)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING rental_history_id`
	return r.db.QueryRowContext(ctx, query, rh.AccountID, rh.UmbrellaID, rh.StartStationID, rh.DestinationStationID, rh.CardID, rh.StartRentalTime, rh.EndRentalTime, rh.Price).Scan(&rh.RentalHistoryID)
}

func (r *rentalHistoryRepository) Update(ctx context.Context, rh *domain.RentalHistory) error {
	query := `UPDATE rental_histories SET account_id = $1, umbrella_id = $2, start_station_id = $3, destination_station_id = $4, card_id = $5, start_rental_time = $6, end_rental_time = $7, price = $8 WHERE rental_history_id = $9`
	res, err := r.db.ExecContext(ctx, query, rh.AccountID, rh.UmbrellaID, rh.StartStationID, rh.DestinationStationID, rh.CardID, rh.StartRentalTime, rh.EndRentalTime, rh.Price, rh.RentalHistoryID)
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

func (r *rentalHistoryRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rental_histories WHERE rental_history_id = $1`, id)
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

// Heatmap returns start/destination coordinate pairs for completed rentals.
// Both stations are inner-joined, so open rentals are excluded.
func (r *rentalHistoryRepository) Heatmap(ctx context.Context) ([]domain.HeatmapPoint, error) {
	query := `SELECT rh.start_station_id, s1.latitude AS start_latitude, s1.longitude AS start_longitude,
		rh.destination_station_id, s2.latitude AS destination_latitude, s2.longitude AS destination_longitude
	FROM rental_histories rh
	JOIN stations s1 ON rh.start_station_id = s1.station_id
	JOIN stations s2 ON rh.destination_station_id = s2.station_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []domain.HeatmapPoint
	for rows.Next() {
		var p domain.HeatmapPoint
		if err := rows.Scan(&p.StartStationID, &p.StartLatitude, &p.StartLongitude, &p.DestinationStationID, &p.DestinationLatitude, &p.DestinationLongitude); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
