package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/centsible/centsible/pkg/transaction"
	"github.com/centsible/centsible/pkg/user"
	"github.com/shopspring/decimal"
)

// Service runs the aggregator over a snapshot of the current user's
// transactions. The balance reflects exactly the rows visible at the
// snapshot read; no stronger ordering against concurrent writers is
// promised.
type Service interface {
	Balance(ctx context.Context) (decimal.Decimal, error)
	CategorySummary(ctx context.Context, txType transaction.Type) (map[string]decimal.Decimal, error)
	PeriodSummary(ctx context.Context, from, to time.Time) (PeriodSummary, error)
}

type ServiceImpl struct {
	txRepo transaction.Repo
}

func NewLedgerService(txRepo transaction.Repo) *ServiceImpl {
	return &ServiceImpl{txRepo: txRepo}
}

func (s *ServiceImpl) Balance(ctx context.Context) (decimal.Decimal, error) {
	txs, err := s.fetch(ctx, time.Time{}, time.Time{})
	if err != nil {
		return decimal.Zero, err
	}
	return ComputeBalance(txs)
}

func (s *ServiceImpl) CategorySummary(ctx context.Context, txType transaction.Type) (map[string]decimal.Decimal, error) {
	txs, err := s.fetch(ctx, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}
	return SummarizeByCategory(txs, txType)
}

func (s *ServiceImpl) PeriodSummary(ctx context.Context, from, to time.Time) (PeriodSummary, error) {
	// The repo already filters by date; the aggregator re-applies the bounds
	// so the result is correct even over an unfiltered snapshot.
	txs, err := s.fetch(ctx, from, to)
	if err != nil {
		return PeriodSummary{}, err
	}
	return SummarizeByPeriod(txs, from, to)
}

func (s *ServiceImpl) fetch(ctx context.Context, from, to time.Time) ([]transaction.Transaction, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.txRepo.GetAll(ctx, userId, from, to)
}
