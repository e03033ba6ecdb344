package goal

import (
	"context"
	"fmt"

	"github.com/centsible/centsible/internal/validation"
	"github.com/centsible/centsible/pkg/user"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	Create(ctx context.Context, goal Goal) (Goal, error)
	Get(ctx context.Context, id int) (Goal, error)
	GetAll(ctx context.Context) ([]Goal, error)
	Update(ctx context.Context, goal Goal) (Goal, error)
	AddContribution(ctx context.Context, id int, amount decimal.Decimal) (Goal, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ServiceImpl struct {
	repo Repo
}

func NewGoalService(repo Repo) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) Create(ctx context.Context, goal Goal) (Goal, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Goal{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := goal.Validate(); err != nil {
		return Goal{}, err
	}
	goal.SavedAmount = decimal.Zero

	id, err := s.repo.Store(ctx, userId, goal)
	if err != nil {
		return Goal{}, err
	}
	goal.ID = id
	return goal, nil
}

func (s *ServiceImpl) Get(ctx context.Context, id int) (Goal, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Goal{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.Get(ctx, userId, id)
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Goal, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId)
}

func (s *ServiceImpl) Update(ctx context.Context, goal Goal) (Goal, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Goal{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := goal.Validate(); err != nil {
		return Goal{}, err
	}

	updated, err := s.repo.Update(ctx, userId, goal)
	if err != nil {
		return Goal{}, err
	}
	if !updated {
		log.Warnf("goal not updated, probably because it does not exist (%d) or the user (%d) is not the owner", goal.ID, userId)
		return Goal{}, ErrGoalNotFound
	}
	return s.repo.Get(ctx, userId, goal.ID)
}

func (s *ServiceImpl) AddContribution(ctx context.Context, id int, amount decimal.Decimal) (Goal, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Goal{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if !amount.IsPositive() {
		return Goal{}, validation.Failed("amount", "must be positive")
	}
	if amount.Exponent() < -2 {
		return Goal{}, validation.Failed("amount", "must have at most 2 decimal places")
	}
	return s.repo.AddContribution(ctx, userId, id, amount)
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.Delete(ctx, userId, id)
}
