package goal

import (
	"context"
	"testing"
	"time"

	"github.com/centsible/centsible/internal/validation"
	"github.com/centsible/centsible/pkg/user"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var goalRepoStub = NewStubGoalRepo()

func setup(t *testing.T) (Service, context.Context, func()) {
	service := NewGoalService(goalRepoStub)
	ctx := user.WithUser(context.Background(), user.User{
		Id:          1,
		Uid:         uuid.NewString(),
		Email:       "test@example.com",
		DisplayName: "Test User",
		Role:        user.RoleUser,
		Currency:    "USD",
	})
	return service, ctx, func() {
		goalRepoStub.Cleanup()
	}
}

func TestServiceImpl_Create(t *testing.T) {
	t.Run("should create a goal with zero saved amount", func(t *testing.T) {
		service, ctx, teardown := setup(t)
		defer teardown()

		// when
		created, err := service.Create(ctx, Goal{
			Name:         "Emergency fund",
			TargetAmount: decimal.RequireFromString("5000.00"),
			SavedAmount:  decimal.RequireFromString("999.00"),
			Deadline:     time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
		})

		// then
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.True(t, created.SavedAmount.IsZero())
	})

	t.Run("should reject a goal without a name", func(t *testing.T) {
		service, ctx, teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Create(ctx, Goal{TargetAmount: decimal.RequireFromString("100.00")})

		// then
		var validationErr *validation.Error
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "name", validationErr.Field)
	})

	t.Run("should reject a non-positive target", func(t *testing.T) {
		service, ctx, teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Create(ctx, Goal{Name: "Trip", TargetAmount: decimal.Zero})

		// then
		var validationErr *validation.Error
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "targetAmount", validationErr.Field)
	})
}

func TestServiceImpl_AddContribution(t *testing.T) {
	t.Run("should accumulate contributions", func(t *testing.T) {
		service, ctx, teardown := setup(t)
		defer teardown()

		// given
		created, err := service.Create(ctx, Goal{Name: "Trip", TargetAmount: decimal.RequireFromString("1000.00")})
		require.NoError(t, err)

		// when
		_, err = service.AddContribution(ctx, created.ID, decimal.RequireFromString("100.00"))
		require.NoError(t, err)
		updated, err := service.AddContribution(ctx, created.ID, decimal.RequireFromString("50.50"))

		// then
		require.NoError(t, err)
		assert.True(t, updated.SavedAmount.Equal(decimal.RequireFromString("150.50")), "got %s", updated.SavedAmount)
	})

	t.Run("should reject a non-positive contribution", func(t *testing.T) {
		service, ctx, teardown := setup(t)
		defer teardown()

		// given
		created, err := service.Create(ctx, Goal{Name: "Trip", TargetAmount: decimal.RequireFromString("1000.00")})
		require.NoError(t, err)

		// when
		_, err = service.AddContribution(ctx, created.ID, decimal.Zero)

		// then
		var validationErr *validation.Error
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "amount", validationErr.Field)
	})

	t.Run("should return not found for a missing goal", func(t *testing.T) {
		service, ctx, teardown := setup(t)
		defer teardown()

		// when
		_, err := service.AddContribution(ctx, 12345, decimal.RequireFromString("10.00"))

		// then
		require.ErrorIs(t, err, ErrGoalNotFound)
	})
}

func TestServiceImpl_Update(t *testing.T) {
	t.Run("should return not found for a missing goal", func(t *testing.T) {
		service, ctx, teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Update(ctx, Goal{ID: 12345, Name: "Trip", TargetAmount: decimal.RequireFromString("100.00")})

		// then
		require.ErrorIs(t, err, ErrGoalNotFound)
	})
}

func TestGoal_Progress(t *testing.T) {
	t.Run("should return the saved fraction", func(t *testing.T) {
		g := Goal{TargetAmount: decimal.RequireFromString("1000.00"), SavedAmount: decimal.RequireFromString("250.00")}
		assert.True(t, g.Progress().Equal(decimal.RequireFromString("0.25")))
	})

	t.Run("should cap progress at 1", func(t *testing.T) {
		g := Goal{TargetAmount: decimal.RequireFromString("100.00"), SavedAmount: decimal.RequireFromString("150.00")}
		assert.True(t, g.Progress().Equal(decimal.NewFromInt(1)))
	})

	t.Run("should return zero for a zero target", func(t *testing.T) {
		g := Goal{}
		assert.True(t, g.Progress().IsZero())
	})
}
