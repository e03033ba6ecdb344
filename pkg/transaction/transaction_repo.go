package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type Repo interface {
	Store(ctx context.Context, userId int, tx Transaction) (Transaction, error)
	// GetAll returns the user's transactions ordered by date then id. Zero
	// from/to mean an unbounded range; bounds are inclusive calendar dates.
	GetAll(ctx context.Context, userId int, from, to time.Time) ([]Transaction, error)
	Update(ctx context.Context, userId int, tx Transaction) (bool, error)
	Delete(ctx context.Context, userId int, id int) (bool, error)
}

type RepoImpl struct {
	db *pgxpool.Pool
}

func NewTransactionRepo(db *pgxpool.Pool) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Store(ctx context.Context, userId int, tx Transaction) (Transaction, error) {
	query := `INSERT INTO transaction (uid, amount, type, category, date, description, user_id)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		tx.Uid,
		tx.Amount.StringFixed(2),
		tx.Type,
		tx.Category,
		tx.Date.Format(DateLayout),
		tx.Description,
		userId,
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		err := fmt.Errorf("could not store transaction: %w", err)
		log.Error(err)
		return Transaction{}, err
	}
	return tx, nil
}

func (r *RepoImpl) GetAll(ctx context.Context, userId int, from, to time.Time) ([]Transaction, error) {
	query := `SELECT id, uid, amount::text, type, category, date, description, created_at, updated_at
				FROM transaction WHERE user_id = $1`
	args := []any{userId}
	if !from.IsZero() {
		args = append(args, from.Format(DateLayout))
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if !to.IsZero() {
		args = append(args, to.Format(DateLayout))
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date, id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query transactions: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var txs []Transaction
	for rows.Next() {
		var tx Transaction
		var amount string
		if err := rows.Scan(
			&tx.ID,
			&tx.Uid,
			&amount,
			&tx.Type,
			&tx.Category,
			&tx.Date,
			&tx.Description,
			&tx.CreatedAt,
			&tx.UpdatedAt,
		); err != nil {
			err := fmt.Errorf("could not scan transaction: %w", err)
			log.Error(err)
			return nil, err
		}
		tx.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			err := fmt.Errorf("could not parse stored amount %q: %w", amount, err)
			log.Error(err)
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

func (r *RepoImpl) Update(ctx context.Context, userId int, tx Transaction) (bool, error) {
	query := `UPDATE transaction SET
				amount = $1,
				type = $2,
				category = $3,
				date = $4,
				description = $5,
				updated_at = now()
			  WHERE id = $6 AND user_id = $7`
	tag, err := r.db.Exec(ctx, query,
		tx.Amount.StringFixed(2),
		tx.Type,
		tx.Category,
		tx.Date.Format(DateLayout),
		tx.Description,
		tx.ID,
		userId,
	)
	if err != nil {
		err := fmt.Errorf("could not update transaction: %w", err)
		log.Error(err)
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *RepoImpl) Delete(ctx context.Context, userId int, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM transaction WHERE id = $1 AND user_id = $2", id, userId)
	if err != nil {
		err := fmt.Errorf("could not delete transaction: %w", err)
		log.Error(err)
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
