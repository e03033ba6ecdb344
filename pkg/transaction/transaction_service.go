package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/centsible/centsible/pkg/user"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	Create(ctx context.Context, rawAmount, rawType, category, rawDate, description string) (Transaction, error)
	List(ctx context.Context, from, to time.Time) ([]Transaction, error)
	Update(ctx context.Context, id int, rawAmount, rawType, category, rawDate, description string) (Transaction, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ServiceImpl struct {
	repo Repo
}

func NewTransactionService(repo Repo) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) Create(ctx context.Context, rawAmount, rawType, category, rawDate, description string) (Transaction, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Transaction{}, fmt.Errorf("failed to get current user: %w", err)
	}

	tx, err := New(rawAmount, rawType, category, rawDate, description)
	if err != nil {
		return Transaction{}, err
	}
	tx.Uid = uuid.New().String()

	return s.repo.Store(ctx, userId, tx)
}

func (s *ServiceImpl) List(ctx context.Context, from, to time.Time) ([]Transaction, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId, from, to)
}

func (s *ServiceImpl) Update(ctx context.Context, id int, rawAmount, rawType, category, rawDate, description string) (Transaction, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Transaction{}, fmt.Errorf("failed to get current user: %w", err)
	}

	tx, err := New(rawAmount, rawType, category, rawDate, description)
	if err != nil {
		return Transaction{}, err
	}
	tx.ID = id

	updated, err := s.repo.Update(ctx, userId, tx)
	if err != nil {
		return Transaction{}, err
	}
	if !updated {
		log.Warnf("transaction not updated, probably because it does not exist (%d) or the user (%d) is not the owner", id, userId)
		return Transaction{}, ErrTransactionNotFound
	}
	return tx, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.Delete(ctx, userId, id)
}
