package app

import (
	"github.com/centsible/centsible/internal/config"
	"github.com/centsible/centsible/internal/utils"
	"github.com/centsible/centsible/pkg/advisor"
	"github.com/centsible/centsible/pkg/budget"
	"github.com/centsible/centsible/pkg/dashboard"
	"github.com/centsible/centsible/pkg/goal"
	"github.com/centsible/centsible/pkg/google"
	"github.com/centsible/centsible/pkg/ledger"
	"github.com/centsible/centsible/pkg/transaction"
	"github.com/centsible/centsible/pkg/user"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	UserService user.Service
	UserHandler *user.Handler

	GoogleAuth *google.Auth

	TransactionRepo    transaction.Repo
	TransactionService transaction.Service
	TransactionHandler *transaction.Handler

	LedgerService *ledger.ServiceImpl
	LedgerHandler *ledger.Handler

	Advisor       advisor.Advisor
	BudgetRepo    budget.Repo
	BudgetService *budget.ServiceImpl
	BudgetHandler *budget.Handler

	GoalRepo    goal.Repo
	GoalService *goal.ServiceImpl
	GoalHandler *goal.Handler

	DashboardService *dashboard.Service
	DashboardHandler *dashboard.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *pgxpool.Pool, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.UserService = user.NewUserService(user.NewUserRepo(db))
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.GoogleAuth = google.NewAuth(db, deps.UserService, cfg)

	deps.TransactionRepo = transaction.NewTransactionRepo(db)
	deps.TransactionService = transaction.NewTransactionService(deps.TransactionRepo)
	deps.TransactionHandler = transaction.NewHandler(deps.TransactionService, transaction.NewCsvRenderer())

	deps.LedgerService = ledger.NewLedgerService(deps.TransactionRepo)
	deps.LedgerHandler = ledger.NewHandler(deps.LedgerService)

	if cfg.Advisor.ApiKey != "" {
		deps.Advisor = advisor.NewGenaiAdvisor(cfg.Advisor.ApiKey, cfg.Advisor.Model)
	} else {
		log.Info("No advisor API key configured, budget recommendations disabled")
	}

	deps.Clock = &utils.SystemClock{}
	deps.BudgetRepo = budget.NewBudgetRepo(db)
	deps.BudgetService = budget.NewBudgetService(deps.BudgetRepo, deps.LedgerService, deps.Advisor, deps.Clock)
	deps.BudgetHandler = budget.NewHandler(deps.BudgetService)

	deps.GoalRepo = goal.NewGoalRepo(db)
	deps.GoalService = goal.NewGoalService(deps.GoalRepo)
	deps.GoalHandler = goal.NewHandler(deps.GoalService)

	deps.DashboardService = dashboard.NewService(deps.LedgerService, deps.BudgetService, deps.GoalService)
	deps.DashboardHandler = dashboard.NewHandler(deps.DashboardService)

	return deps
}
