package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"umbrella-fleet-backend/internal/domain"
	"umbrella-fleet-backend/internal/repository"
)

type maintainerRepository struct {
	db *sql.DB
}

func NewMaintainerRepository(db *sql.DB) repository.MaintainerRepository {
	return &maintainerRepository{db: db}
}

const maintainerColumns = `maintainer_id, first_name, last_name, phone, email, date_of_birth, street, city, province, zip_code, salary`

func scanMaintainer(row interface{ Scan(...any) error }) (*domain.Maintainer, error) {
	m := &domain.Maintainer{}
	var dob time.Time
	err := row.Scan(&m.MaintainerID, &m.FirstName, &m.LastName, &m.Phone, &m.Email, &dob, &m.Street, &m.City, &m.Province, &m.ZIPCode, &m.Salary)
	if err != nil {
		return nil, err
	}
	m.DateOfBirth = formatDate(dob)
	return m, nil
}

func (r *maintainerRepository) List(ctx context.Context) ([]domain.Maintainer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+maintainerColumns+` FROM maintainers ORDER BY maintainer_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var maintainers []domain.Maintainer
	for rows.Next() {
		m, err := scanMaintainer(rows)
		if err != nil {
			return nil, err
		}
		maintainers = append(maintainers, *m)
	}
	return maintainers, rows.Err()
}

func (r *maintainerRepository) GetByID(ctx context.Context, id int32) (*domain.Maintainer, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+maintainerColumns+` FROM maintainers WHERE maintainer_id = $1`, id)
	m, err := scanMaintainer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *maintainerRepository) Create(ctx context.Context, m *domain.Maintainer) error {
	query := `INSERT INTO maintainers (first_name, last_name, phone, email, date_of_birth, street, city, province, zip_code, salary)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING maintainer_id`
	return r.db.QueryRowContext(ctx, query, m.FirstName, m.LastName, m.Phone, m.Email, m.DateOfBirth, m.Street, m.City, m.Province, m.ZIPCode, m.Salary).Scan(&m.MaintainerID)
}

// Update overwrites every mutable field. Salary is included even though the
// dashboard edit form never sends it changed; full-overwrite is the contract.
func (r *maintainerRepository) Update(ctx context.Context, m *domain.Maintainer) error {
	query := `UPDATE maintainers SET first_name = $1, last_name = $2, phone = $3, email = $4, date_of_birth = $5, street = $6, city = $7, province = $8, zip_code = $9, salary = $10 WHERE maintainer_id = $11`
	res, err := r.db.ExecContext(ctx, query, m.FirstName, m.LastName, m.Phone, m.Email, m.DateOfBirth, m.Street, m.City, m.Province, m.ZIPCode, m.Salary, m.MaintainerID)
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

func (r *maintainerRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM maintainers WHERE maintainer_id = $1`, id)
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
