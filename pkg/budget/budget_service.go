package budget

import (
	"context"
	"fmt"

	"github.com/centsible/centsible/internal/utils"
	"github.com/centsible/centsible/internal/validation"
	"github.com/centsible/centsible/pkg/advisor"
	"github.com/centsible/centsible/pkg/ledger"
	"github.com/centsible/centsible/pkg/user"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	// Allocate validates and distributes total, optionally attaches an AI
	// recommendation, and upserts the allocation for the user's category and
	// period. No partial allocation is ever persisted.
	Allocate(ctx context.Context, category string, total decimal.Decimal, period Period, pct Percentages) (Allocation, error)
	GetAll(ctx context.Context) ([]Allocation, error)
}

type ServiceImpl struct {
	repo    Repo
	ledger  ledger.Service
	advisor advisor.Advisor
	clock   utils.Clock
}

// NewBudgetService builds the allocator service. adv may be nil, which
// disables recommendations entirely.
func NewBudgetService(repo Repo, ledgerService ledger.Service, adv advisor.Advisor, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, ledger: ledgerService, advisor: adv, clock: clock}
}

func (s *ServiceImpl) Allocate(ctx context.Context, category string, total decimal.Decimal, period Period, pct Percentages) (Allocation, error) {
	currentUser, err := user.CurrentUser(ctx)
	if err != nil {
		return Allocation{}, fmt.Errorf("failed to get current user: %w", err)
	}

	if category == "" {
		return Allocation{}, validation.Failed("category", "must not be empty")
	}
	if period == "" {
		period = PeriodMonthly
	}
	if period != PeriodMonthly && period != PeriodYearly {
		return Allocation{}, validation.Failed("period", "must be monthly or yearly")
	}

	breakdown, err := Allocate(total, pct)
	if err != nil {
		return Allocation{}, err
	}

	allocation := Allocation{
		Category:    category,
		Amount:      total,
		Period:      period,
		Breakdown:   breakdown,
		GeneratedAt: s.clock.Now(),
	}
	allocation.Recommendation = s.recommend(ctx, currentUser, allocation)

	return s.repo.Upsert(ctx, currentUser.Id, allocation)
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Allocation, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId)
}

// recommend asks the advisor for a note on the allocation. Advisor failures
// only cost the recommendation text, never the allocation itself.
func (s *ServiceImpl) recommend(ctx context.Context, currentUser user.User, allocation Allocation) string {
	if s.advisor == nil {
		return ""
	}

	balance := decimal.Zero
	if s.ledger != nil {
		b, err := s.ledger.Balance(ctx)
		if err != nil {
			log.Warnf("could not compute balance for recommendation: %v", err)
		} else {
			balance = b
		}
	}

	text, err := s.advisor.Recommend(ctx, advisor.Request{
		Total:       allocation.Amount,
		Savings:     allocation.Breakdown.Savings,
		Necessities: allocation.Breakdown.Necessities,
		Wants:       allocation.Breakdown.Wants,
		Investments: allocation.Breakdown.Investments,
		Balance:     balance,
		Currency:    currentUser.Currency,
	})
	if err != nil {
		log.Warnf("advisor failed, storing allocation without recommendation: %v", err)
		return ""
	}
	return text
}
