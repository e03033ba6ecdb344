package test_utils

import (
	"context"
	"testing"

	"github.com/centsible/centsible/pkg/user"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CreateTestUser inserts a user row so that user-scoped repositories have a
// valid owner to reference.
func CreateTestUser(t *testing.T, db *pgxpool.Pool) user.User {
	t.Helper()

	u := user.User{
		Uid:         uuid.New().String(),
		Email:       uuid.New().String() + "@example.com",
		DisplayName: "Test User",
		Role:        user.RoleUser,
		Currency:    "USD",
	}
	err := db.QueryRow(context.Background(),
		"INSERT INTO app_user (uid, email, display_name, role, currency) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at",
		u.Uid, u.Email, u.DisplayName, string(u.Role), u.Currency,
	).Scan(&u.Id, &u.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return u
}
