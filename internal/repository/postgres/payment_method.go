package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"umbrella-fleet-backend/internal/domain"
	"umbrella-fleet-backend/internal/repository"
)

type paymentMethodRepository struct {
	db *sql.DB
}

func NewPaymentMethodRepository(db *sql.DB) repository.PaymentMethodRepository {
	return &paymentMethodRepository{db: db}
}

func (r *paymentMethodRepository) List(ctx context.Context) ([]domain.PaymentMethod, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT card_id, card_number, card_name, cvv, expire_date FROM payment_methods ORDER BY card_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var methods []domain.PaymentMethod
	for rows.Next() {
		var p domain.PaymentMethod
		var expire time.Time
		if err := rows.Scan(&p.CardID, &p.CardNumber, &p.CardName, &p.CVV, &expire); err != nil {
			return nil, err
		}
		p.ExpireDate = formatDate(expire)
		methods = append(methods, p)
	}
	return methods, rows.Err()
}

// ListCardIDs backs the card picker on the account form.
func (r *paymentMethodRepository) ListCardIDs(ctx context.Context) ([]int32, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT card_id FROM payment_methods ORDER BY card_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *paymentMethodRepository) GetByID(ctx context.Context, id int32) (*domain.PaymentMethod, error) {
	p := &domain.PaymentMethod{}
	var expire time.Time
	err := r.db.QueryRowContext(ctx, `SELECT card_id, card_number, card_name, cvv, expire_date FROM payment_methods WHERE card_id = $1`, id).
		Scan(&p.CardID, &p.CardNumber, &p.CardName, &p.CVV, &expire)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.ExpireDate = formatDate(expire)
	return p, nil
}

func (r *paymentMethodRepository) Create(ctx context.Context, p *domain.PaymentMethod) error {
	query := `INSERT INTO payment_methods (card_number, card_name, cvv, expire_date) VALUES ($1, $2, $3, $4) RETURNING card_id`
	return r.db.QueryRowContext(ctx, query, p.CardNumber, p.CardName, p.CVV, p.ExpireDate).Scan(&p.CardID)
}

func (r *paymentMethodRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM payment_methods WHERE card_id = $1`, id)
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
