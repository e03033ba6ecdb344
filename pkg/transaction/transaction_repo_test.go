package transaction

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/centsible/centsible/internal/test_utils"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

var pgContainer *postgres.PostgresContainer
var openDb func() *pgxpool.Pool

func TestMain(m *testing.M) {
	pgContainer, openDb = test_utils.TestWithDB()
	defer func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			log.Errorf("failed to terminate container: %s", err)
		}
	}()
	code := m.Run()
	os.Exit(code)
}

func setupTestRepository(t *testing.T) (context.Context, Repo, int) {
	ctx := context.Background()
	db := openDb()
	repository := NewTransactionRepo(db)
	userId := test_utils.CreateTestUser(t, db).Id
	t.Cleanup(func() {
		db.Close()
		err := pgContainer.Restore(ctx)
		require.NoError(t, err)
	})
	return ctx, repository, userId
}

func testTransaction(txType Type, amount, category, date string) Transaction {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		panic(err)
	}
	return Transaction{
		Uid:      uuid.NewString(),
		Amount:   decimal.RequireFromString(amount),
		Type:     txType,
		Category: category,
		Date:     day,
	}
}

func TestRepoImpl_Store(t *testing.T) {
	t.Run("should store and return the transaction with generated fields", func(t *testing.T) {
		// given
		ctx, repo, userId := setupTestRepository(t)

		// when
		stored, err := repo.Store(ctx, userId, testTransaction(TypeExpense, "42.50", "groceries", "2024-03-15"))

		// then
		require.NoError(t, err)
		assert.NotZero(t, stored.ID)
		assert.False(t, stored.CreatedAt.IsZero())
	})

	t.Run("should round-trip the amount exactly", func(t *testing.T) {
		// given
		ctx, repo, userId := setupTestRepository(t)
		_, err := repo.Store(ctx, userId, testTransaction(TypeIncome, "0.01", "salary", "2024-03-15"))
		require.NoError(t, err)

		// when
		txs, err := repo.GetAll(ctx, userId, time.Time{}, time.Time{})

		// then
		require.NoError(t, err)
		require.Len(t, txs, 1)
		assert.True(t, txs[0].Amount.Equal(decimal.RequireFromString("0.01")), "got %s", txs[0].Amount)
	})
}

func TestRepoImpl_GetAll(t *testing.T) {
	t.Run("should return transactions ordered by date then id", func(t *testing.T) {
		// given
		ctx, repo, userId := setupTestRepository(t)
		_, err := repo.Store(ctx, userId, testTransaction(TypeIncome, "50.00", "salary", "2024-02-01"))
		require.NoError(t, err)
		_, err = repo.Store(ctx, userId, testTransaction(TypeIncome, "100.00", "salary", "2024-01-01"))
		require.NoError(t, err)
		_, err = repo.Store(ctx, userId, testTransaction(TypeExpense, "30.00", "groceries", "2024-01-01"))
		require.NoError(t, err)

		// when
		txs, err := repo.GetAll(ctx, userId, time.Time{}, time.Time{})

		// then
		require.NoError(t, err)
		require.Len(t, txs, 3)
		assert.True(t, txs[0].Amount.Equal(decimal.RequireFromString("100.00")))
		assert.True(t, txs[1].Amount.Equal(decimal.RequireFromString("30.00")))
		assert.True(t, txs[2].Amount.Equal(decimal.RequireFromString("50.00")))
	})

	t.Run("should filter by inclusive date bounds", func(t *testing.T) {
		// given
		ctx, repo, userId := setupTestRepository(t)
		_, err := repo.Store(ctx, userId, testTransaction(TypeIncome, "10.00", "salary", "2023-12-31"))
		require.NoError(t, err)
		_, err = repo.Store(ctx, userId, testTransaction(TypeIncome, "20.00", "salary", "2024-01-01"))
		require.NoError(t, err)
		_, err = repo.Store(ctx, userId, testTransaction(TypeIncome, "40.00", "salary", "2024-01-31"))
		require.NoError(t, err)
		_, err = repo.Store(ctx, userId, testTransaction(TypeIncome, "80.00", "salary", "2024-02-01"))
		require.NoError(t, err)

		from, _ := time.Parse(DateLayout, "2024-01-01")
		to, _ := time.Parse(DateLayout, "2024-01-31")

		// when
		txs, err := repo.GetAll(ctx, userId, from, to)

		// then
		require.NoError(t, err)
		require.Len(t, txs, 2)
		assert.True(t, txs[0].Amount.Equal(decimal.RequireFromString("20.00")))
		assert.True(t, txs[1].Amount.Equal(decimal.RequireFromString("40.00")))
	})

	t.Run("should treat a zero bound as unbounded", func(t *testing.T) {
		// given
		ctx, repo, userId := setupTestRepository(t)
		_, err := repo.Store(ctx, userId, testTransaction(TypeIncome, "10.00", "salary", "2023-12-31"))
		require.NoError(t, err)
		_, err = repo.Store(ctx, userId, testTransaction(TypeIncome, "20.00", "salary", "2024-01-01"))
		require.NoError(t, err)

		from, _ := time.Parse(DateLayout, "2024-01-01")

		// when
		txs, err := repo.GetAll(ctx, userId, from, time.Time{})

		// then
		require.NoError(t, err)
		require.Len(t, txs, 1)
		assert.True(t, txs[0].Amount.Equal(decimal.RequireFromString("20.00")))
	})

	t.Run("should not return transactions of other users", func(t *testing.T) {
		// given
		ctx, repo, userId := setupTestRepository(t)
		otherDb := openDb()
		otherUserId := test_utils.CreateTestUser(t, otherDb).Id
		otherDb.Close()

		_, err := repo.Store(ctx, userId, testTransaction(TypeIncome, "10.00", "salary", "2024-01-01"))
		require.NoError(t, err)
		_, err = repo.Store(ctx, otherUserId, testTransaction(TypeIncome, "99.00", "salary", "2024-01-01"))
		require.NoError(t, err)

		// when
		txs, err := repo.GetAll(ctx, userId, time.Time{}, time.Time{})

		// then
		require.NoError(t, err)
		require.Len(t, txs, 1)
		assert.True(t, txs[0].Amount.Equal(decimal.RequireFromString("10.00")))
	})
}

func TestRepoImpl_Update(t *testing.T) {
	t.Run("should update an owned transaction", func(t *testing.T) {
		// given
		ctx, repo, userId := setupTestRepository(t)
		stored, err := repo.Store(ctx, userId, testTransaction(TypeExpense, "10.00", "groceries", "2024-03-15"))
		require.NoError(t, err)

		stored.Amount = decimal.RequireFromString("12.00")
		stored.Category = "restaurants"

		// when
		updated, err := repo.Update(ctx, userId, stored)

		// then
		require.NoError(t, err)
		assert.True(t, updated)

		txs, err := repo.GetAll(ctx, userId, time.Time{}, time.Time{})
		require.NoError(t, err)
		require.Len(t, txs, 1)
		assert.Equal(t, "restaurants", txs[0].Category)
		assert.True(t, txs[0].Amount.Equal(decimal.RequireFromString("12.00")))
	})

	t.Run("should not update a transaction of another user", func(t *testing.T) {
		// given
		ctx, repo, userId := setupTestRepository(t)
		otherDb := openDb()
		otherUserId := test_utils.CreateTestUser(t, otherDb).Id
		otherDb.Close()

		stored, err := repo.Store(ctx, otherUserId, testTransaction(TypeExpense, "10.00", "groceries", "2024-03-15"))
		require.NoError(t, err)

		// when
		updated, err := repo.Update(ctx, userId, stored)

		// then
		require.NoError(t, err)
		assert.False(t, updated)
	})
}

func TestRepoImpl_Delete(t *testing.T) {
	t.Run("should delete an owned transaction", func(t *testing.T) {
		// given
		ctx, repo, userId := setupTestRepository(t)
		stored, err := repo.Store(ctx, userId, testTransaction(TypeExpense, "10.00", "groceries", "2024-03-15"))
		require.NoError(t, err)

		// when
		deleted, err := repo.Delete(ctx, userId, stored.ID)

		// then
		require.NoError(t, err)
		assert.True(t, deleted)

		txs, err := repo.GetAll(ctx, userId, time.Time{}, time.Time{})
		require.NoError(t, err)
		assert.Empty(t, txs)
	})

	t.Run("should report false for a missing transaction", func(t *testing.T) {
		// given
		ctx, repo, userId := setupTestRepository(t)

		// when
		deleted, err := repo.Delete(ctx, userId, 12345)

		// then
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
