package goal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var ErrGoalNotFound = errors.New("goal not found")

type Repo interface {
	Store(ctx context.Context, userId int, goal Goal) (int, error)
	Get(ctx context.Context, userId int, id int) (Goal, error)
	GetAll(ctx context.Context, userId int) ([]Goal, error)
	Update(ctx context.Context, userId int, goal Goal) (bool, error)
	// AddContribution increments saved_amount atomically so two concurrent
	// contributions both count.
	AddContribution(ctx context.Context, userId int, id int, amount decimal.Decimal) (Goal, error)
	Delete(ctx context.Context, userId int, id int) (bool, error)
}

type RepoImpl struct {
	db *pgxpool.Pool
}

func NewGoalRepo(db *pgxpool.Pool) *RepoImpl {
	return &RepoImpl{db: db}
}

const dateLayout = "2006-01-02"

func (r *RepoImpl) Store(ctx context.Context, userId int, goal Goal) (int, error) {
	var deadlineParam interface{}
	if !goal.Deadline.IsZero() {
		deadlineParam = goal.Deadline.Format(dateLayout)
	}
	query := `INSERT INTO goal (name, target_amount, saved_amount, deadline, user_id)
				VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var id int
	err := r.db.QueryRow(ctx, query,
		goal.Name,
		goal.TargetAmount.StringFixed(2),
		goal.SavedAmount.StringFixed(2),
		deadlineParam,
		userId,
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not store goal: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r *RepoImpl) Get(ctx context.Context, userId int, id int) (Goal, error) {
	query := `SELECT id, name, target_amount::text, saved_amount::text, deadline, created_at
				FROM goal WHERE user_id = $1 AND id = $2`
	return r.scanOne(r.db.QueryRow(ctx, query, userId, id))
}

func (r *RepoImpl) GetAll(ctx context.Context, userId int) ([]Goal, error) {
	query := `SELECT id, name, target_amount::text, saved_amount::text, deadline, created_at
				FROM goal WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query goals: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var goals []Goal
	for rows.Next() {
		goal, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}

func (r *RepoImpl) Update(ctx context.Context, userId int, goal Goal) (bool, error) {
	var deadlineParam interface{}
	if !goal.Deadline.IsZero() {
		deadlineParam = goal.Deadline.Format(dateLayout)
	}
	query := `UPDATE goal SET name = $1, target_amount = $2, deadline = $3 WHERE id = $4 AND user_id = $5`
	tag, err := r.db.Exec(ctx, query,
		goal.Name,
		goal.TargetAmount.StringFixed(2),
		deadlineParam,
		goal.ID,
		userId,
	)
	if err != nil {
		err := fmt.Errorf("could not update goal: %w", err)
		log.Error(err)
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *RepoImpl) AddContribution(ctx context.Context, userId int, id int, amount decimal.Decimal) (Goal, error) {
	query := `UPDATE goal SET saved_amount = saved_amount + $1
				WHERE id = $2 AND user_id = $3
				RETURNING id, name, target_amount::text, saved_amount::text, deadline, created_at`
	return r.scanOne(r.db.QueryRow(ctx, query, amount.StringFixed(2), id, userId))
}

func (r *RepoImpl) Delete(ctx context.Context, userId int, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM goal WHERE id = $1 AND user_id = $2", id, userId)
	if err != nil {
		err := fmt.Errorf("could not delete goal: %w", err)
		log.Error(err)
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *RepoImpl) scanOne(row pgx.Row) (Goal, error) {
	goal, err := scan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Goal{}, ErrGoalNotFound
	} else if err != nil {
		log.Errorf("could not scan goal: %v", err)
		return Goal{}, err
	}
	return goal, nil
}

func (r *RepoImpl) scanRow(rows pgx.Rows) (Goal, error) {
	goal, err := scan(rows)
	if err != nil {
		err := fmt.Errorf("could not scan goal: %w", err)
		log.Error(err)
		return Goal{}, err
	}
	return goal, nil
}

func scan(row pgx.Row) (Goal, error) {
	var goal Goal
	var target, saved string
	var deadline sql.NullTime
	if err := row.Scan(&goal.ID, &goal.Name, &target, &saved, &deadline, &goal.CreatedAt); err != nil {
		return Goal{}, err
	}
	var err error
	if goal.TargetAmount, err = decimal.NewFromString(target); err != nil {
		return Goal{}, fmt.Errorf("could not parse stored target %q: %w", target, err)
	}
	if goal.SavedAmount, err = decimal.NewFromString(saved); err != nil {
		return Goal{}, fmt.Errorf("could not parse stored saved amount %q: %w", saved, err)
	}
	if deadline.Valid {
		goal.Deadline = deadline.Time
	}
	return goal, nil
}
