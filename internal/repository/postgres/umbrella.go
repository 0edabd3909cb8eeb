package postgres

import (
	"context"
	"database/sql"
	"errors"

	"umbrella-fleet-backend/internal/domain"
	"umbrella-fleet-backend/internal/repository"
)

type umbrellaRepository struct {
	db *sql.DB
}

func NewUmbrellaRepository(db *sql.DB) repository.UmbrellaRepository {
	return &umbrellaRepository{db: db}
}

func (r *umbrellaRepository) List(ctx context.Context) ([]domain.Umbrella, error) {
	// Left join: an undocked umbrella still belongs in the list, with a nil
	// station name.
	query := `SELECT u.umbrella_id, u.size, u.color, u.current_station_id, s.station_name AS current_station_name
	FROM umbrellas u
	LEFT JOIN stations s ON u.current_station_id = s.station_id
	ORDER BY u.umbrella_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var umbrellas []domain.Umbrella
	for rows.Next() {
		var u domain.Umbrella
		if err := rows.Scan(&u.UmbrellaID, &u.Size, &u.Color, &u.CurrentStationID, &u.CurrentStationName); err != nil {
			return nil, err
		}
		umbrellas = append(umbrellas, u)
	}
	return umbrellas, rows.Err()
}

func (r *umbrellaRepository) GetByID(ctx context.Context, id int32) (*domain.Umbrella, error) {
	query := `SELECT umbrella_id, size, color, current_station_id FROM umbrellas WHERE umbrella_id = $1`

	u := &domain.Umbrella{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.UmbrellaID, &u.Size, &u.Color, &u.CurrentStationID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *umbrellaRepository) Create(ctx context.Context, u *domain.Umbrella) error {
	query := `INSERT INTO umbrellas (size, color, current_station_id) VALUES ($1, $2, $3) RETURNING umbrella_id`
	return r.db.QueryRowContext(ctx, query, u.Size, u.Color, u.CurrentStationID).Scan(&u.UmbrellaID)
}

func (r *umbrellaRepository) Update(ctx context.Context, u *domain.Umbrella) error {
	query := `UPDATE umbrellas SET size = $1, color = $2, current_station_id = $3 WHERE umbrella_id = $4`
	res, err := r.db.ExecContext(ctx, query, u.Size, u.Color, u.CurrentStationID, u.UmbrellaID)
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

func (r *umbrellaRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM umbrellas WHERE umbrella_id = $1`, id)
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
