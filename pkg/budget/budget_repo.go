package budget

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type Repo interface {
	// Upsert stores the allocation, replacing any existing row for the same
	// (user, category, period) in one atomic statement. Two concurrent calls
	// end with a single row holding the later commit's values.
	Upsert(ctx context.Context, userId int, allocation Allocation) (Allocation, error)
	GetAll(ctx context.Context, userId int) ([]Allocation, error)
}

type RepoImpl struct {
	db *pgxpool.Pool
}

func NewBudgetRepo(db *pgxpool.Pool) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Upsert(ctx context.Context, userId int, allocation Allocation) (Allocation, error) {
	query := `INSERT INTO budget_allocation (
					user_id,
					category,
					period,
					amount,
					savings,
					necessities,
					wants,
					investments,
					recommendation,
					generated_at
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
				ON CONFLICT (user_id, category, period) DO UPDATE SET
					amount = EXCLUDED.amount,
					savings = EXCLUDED.savings,
					necessities = EXCLUDED.necessities,
					wants = EXCLUDED.wants,
					investments = EXCLUDED.investments,
					recommendation = EXCLUDED.recommendation,
					generated_at = EXCLUDED.generated_at
				RETURNING id`
	err := r.db.QueryRow(ctx, query,
		userId,
		allocation.Category,
		allocation.Period,
		allocation.Amount.StringFixed(2),
		allocation.Breakdown.Savings.StringFixed(2),
		allocation.Breakdown.Necessities.StringFixed(2),
		allocation.Breakdown.Wants.StringFixed(2),
		allocation.Breakdown.Investments.StringFixed(2),
		allocation.Recommendation,
		allocation.GeneratedAt,
	).Scan(&allocation.ID)
	if err != nil {
		err := fmt.Errorf("could not upsert budget allocation: %w", err)
		log.Error(err)
		return Allocation{}, err
	}
	return allocation, nil
}

func (r *RepoImpl) GetAll(ctx context.Context, userId int) ([]Allocation, error) {
	query := `SELECT id, category, period, amount::text, savings::text, necessities::text, wants::text,
					investments::text, recommendation, generated_at
				FROM budget_allocation WHERE user_id = $1 ORDER BY category, period`
	rows, err := r.db.Query(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query budget allocations: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var allocations []Allocation
	for rows.Next() {
		var a Allocation
		var amount, savings, necessities, wants, investments string
		if err := rows.Scan(
			&a.ID,
			&a.Category,
			&a.Period,
			&amount,
			&savings,
			&necessities,
			&wants,
			&investments,
			&a.Recommendation,
			&a.GeneratedAt,
		); err != nil {
			err := fmt.Errorf("could not scan budget allocation: %w", err)
			log.Error(err)
			return nil, err
		}
		if a.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("could not parse stored amount %q: %w", amount, err)
		}
		if a.Breakdown.Savings, err = decimal.NewFromString(savings); err != nil {
			return nil, fmt.Errorf("could not parse stored savings %q: %w", savings, err)
		}
		if a.Breakdown.Necessities, err = decimal.NewFromString(necessities); err != nil {
			return nil, fmt.Errorf("could not parse stored necessities %q: %w", necessities, err)
		}
		if a.Breakdown.Wants, err = decimal.NewFromString(wants); err != nil {
			return nil, fmt.Errorf("could not parse stored wants %q: %w", wants, err)
		}
		if a.Breakdown.Investments, err = decimal.NewFromString(investments); err != nil {
			return nil, fmt.Errorf("could not parse stored investments %q: %w", investments, err)
		}
		allocations = append(allocations, a)
	}
	return allocations, rows.Err()
}
