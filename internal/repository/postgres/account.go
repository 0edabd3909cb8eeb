package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"umbrella-fleet-backend/internal/domain"
	"umbrella-fleet-backend/internal/repository"
)

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

const accountColumns = `account_id, first_name, last_name, email, date_of_birth, phone, street, city, province, zip_code, card_id`

func scanAccount(row interface{ Scan(...any) error }) (*domain.Account, error) {
	a := &domain.Account{}
	var dob time.Time
	err := row.Scan(&a.AccountID, &a.FirstName, &a.LastName, &a.Email, &dob, &a.Phone, &a.Street, &a.City, &a.Province, &a.ZIPCode, &a.CardID)
	if err != nil {
		return nil, err
	}
	a.DateOfBirth = formatDate(dob)
	return a, nil
}

func (r *accountRepository) List(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY account_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *a)
	}
	return accounts, rows.Err()
}

func (r *accountRepository) GetByID(ctx context.Context, id int32) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE account_id = $1`, id)
	a, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *accountRepository) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (first_name, last_name, email, date_of_birth, phone, street, city, province, zip_code, card_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING account_id`
	return r.db.QueryRowContext(ctx, query, a.FirstName, a.LastName, a.Email, a.DateOfBirth, a.Phone, a.Street, a.City, a.Province, a.ZIPCode, a.CardID).Scan(&a.AccountID)
}

func (r *accountRepository) Update(ctx context.Context, a *domain.Account) error {
	query := `UPDATE accounts SET first_name = $1, last_name = $2, email = $3, date_of_birth = $4, phone = $5, street = $6, city = $7, province = $8, zip_code = $9, card_id = $10 WHERE account_id = $11`
	res, err := r.db.ExecContext(ctx, query, a.FirstName, a.LastName, a.Email, a.DateOfBirth, a.Phone, a.Street, a.City, a.Province, a.ZIPCode, a.CardID, a.AccountID)
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

func (r *accountRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE account_id = $1`, id)
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
