package dashboard

import (
	"context"

	"github.com/centsible/centsible/pkg/budget"
	"github.com/centsible/centsible/pkg/goal"
	"github.com/centsible/centsible/pkg/ledger"
	"github.com/shopspring/decimal"
)

// Summary composes the read models the dashboard shows on one screen.
type Summary struct {
	Balance     decimal.Decimal
	Allocations []budget.Allocation
	Goals       []goal.Goal
}

type Service struct {
	ledgerService ledger.Service
	budgetService budget.Service
	goalService   goal.Service
}

func NewService(ledgerService ledger.Service, budgetService budget.Service, goalService goal.Service) *Service {
	return &Service{
		ledgerService: ledgerService,
		budgetService: budgetService,
		goalService:   goalService,
	}
}

func (s *Service) GetSummary(ctx context.Context) (Summary, error) {
	balance, err := s.ledgerService.Balance(ctx)
	if err != nil {
		return Summary{}, err
	}
	allocations, err := s.budgetService.GetAll(ctx)
	if err != nil {
		return Summary{}, err
	}
	goals, err := s.goalService.GetAll(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Balance:     balance,
		Allocations: allocations,
		Goals:       goals,
	}, nil
}
