package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"umbrella-fleet-backend/internal/domain"
	"umbrella-fleet-backend/internal/repository"
)

type maintenanceHistoryRepository struct {
	db *sql.DB
}

func NewMaintenanceHistoryRepository(db *sql.DB) repository.MaintenanceHistoryRepository {
	return &maintenanceHistoryRepository{db: db}
}

func (r *maintenanceHistoryRepository) List(ctx context.Context) ([]domain.MaintenanceHistoryView, error) {
	query := `SELECT mh.maintenance_history_id, mh.maintenance_time, mh.report,
		m.maintainer_id, m.first_name AS maintainer_name, m.last_name AS maintainer_last_name,
		s.station_id, s.station_name
	FROM maintenance_histories mh
	JOIN maintainers m ON mh.maintainer_id = m.maintainer_id
	JOIN stations s ON mh.station_id = s.station_id
	ORDER BY mh.maintenance_history_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var histories []domain.MaintenanceHistoryView
	for rows.Next() {
		var h domain.MaintenanceHistoryView
		var at time.Time
		if err := rows.Scan(&h.MaintenanceHistoryID, &at, &h.Report, &h.MaintainerID, &h.MaintainerName, &h.MaintainerLastName, &h.StationID, &h.StationName); err != nil {
			return nil, err
		}
		h.MaintenanceTime = formatDateTime(at)
		histories = append(histories, h)
	}
	return histories, rows.Err()
}

func (r *maintenanceHistoryRepository) GetByID(ctx context.Context, id int32) (*domain.MaintenanceHistory, error) {
	query := `SELECT maintenance_history_id, maintenance_time, maintainer_id, station_id, report FROM maintenance_histories WHERE maintenance_history_id = $1`

	h := &domain.MaintenanceHistory{}
	var at time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(&h.MaintenanceHistoryID, &at, &h.MaintainerID, &h.StationID, &h.Report)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	h.MaintenanceTime = formatDateTime(at)
	return h, nil
}

func (r *maintenanceHistoryRepository) Create(ctx context.Context, h *domain.MaintenanceHistory) error {
	query := `INSERT INTO maintenance_histories (maintenance_time, maintainer_id, station_id, report) VALUES ($1, $2, $3, $4) RETURNING maintenance_history_id`
	return r.db.QueryRowContext(ctx, query, h.MaintenanceTime, h.MaintainerID, h.StationID, h.Report).Scan(&h.MaintenanceHistoryID)
}

func (r *maintenanceHistoryRepository) Update(ctx context.Context, h *domain.MaintenanceHistory) error {
	query := `UPDATE maintenance_histories SET maintenance_time = $1, maintainer_id = $2, station_id = $3, report = $4 WHERE maintenance_history_id = $5`
	res, err := r.db.ExecContext(ctx, query, h.MaintenanceTime, h.MaintainerID, h.StationID, h.Report, h.MaintenanceHistoryID)
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

func (r *maintenanceHistoryRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM maintenance_histories WHERE maintenance_history_id = $1`, id)
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
