package app

import (
	"github.com/centsible/centsible/internal/config"
	"github.com/centsible/centsible/pkg/user"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Transactions
	r.HandleFunc("/api/transaction", deps.TransactionHandler.Create).Methods("POST")
	r.HandleFunc("/api/transaction", deps.TransactionHandler.List).Methods("GET")
	r.HandleFunc("/api/transaction/{id}", deps.TransactionHandler.Update).Methods("PUT")
	r.HandleFunc("/api/transaction/{id}", deps.TransactionHandler.Delete).Methods("DELETE")

	// Ledger
	r.HandleFunc("/api/ledger/balance", deps.LedgerHandler.GetBalance).Methods("GET")
	r.HandleFunc("/api/ledger/summary/category", deps.LedgerHandler.GetCategorySummary).Queries("type", "{type}").Methods("GET")
	r.HandleFunc("/api/ledger/summary/period", deps.LedgerHandler.GetPeriodSummary).
		Queries("from", "{from}", "to", "{to}").Methods("GET")

	// Budget allocations
	r.HandleFunc("/api/budget/allocation", deps.BudgetHandler.Allocate).Methods("POST")
	r.HandleFunc("/api/budget/allocation", deps.BudgetHandler.GetAll).Methods("GET")

	// Goals
	r.HandleFunc("/api/goal", deps.GoalHandler.Create).Methods("POST")
	r.HandleFunc("/api/goal", deps.GoalHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/goal/{id}", deps.GoalHandler.Update).Methods("PUT")
	r.HandleFunc("/api/goal/{id}/contribution", deps.GoalHandler.AddContribution).Methods("POST")
	r.HandleFunc("/api/goal/{id}", deps.GoalHandler.Delete).Methods("DELETE")

	// Dashboard
	r.HandleFunc("/api/dashboard", deps.DashboardHandler.GetSummary).Methods("GET")

	// User management
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user/current", deps.UserHandler.UpdateUser).Methods("PUT")

	// Admin panel
	r.HandleFunc("/api/admin/user", user.RequireRole(user.RoleAdmin, deps.UserHandler.ListUsers)).Methods("GET")
	r.HandleFunc("/api/admin/user/{id}", user.RequireRole(user.RoleAdmin, deps.UserHandler.DeleteUser)).Methods("DELETE")

	// Google sign-in
	r.HandleFunc("/api/auth/google/login", deps.GoogleAuth.OAuthLogin).Methods("GET")
	r.HandleFunc("/api/auth/google/callback", deps.GoogleAuth.OAuthCallback).Methods("GET")
}
