package repository_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/models"
	repository "github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPromotionRepoTest(t *testing.T) (repository.PromotionRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewPromotionRepo(db)
	require.NotNil(t, repo, "NewPromotionRepo should return a non-nil repository")

	return repo, mock
}

var promotionRows = []string{
	"id", "code", "discount_type", "discount_value", "minimum_order_amount",
	"start_date", "end_date", "usage_limit", "coalesce", "is_active",
}

func TestGetByCode(t *testing.T) {
	repo, mock := setupPromotionRepoTest(t)
	ctx := t.Context()

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(`SELECT (.+) FROM promotions WHERE UPPER\(code\) = \$1`).
			WithArgs("SUMMER20").
			WillReturnRows(sqlmock.NewRows(promotionRows).
				AddRow("promo-1", "SUMMER20", "percentage", int64(20), int64(100000), start, end, int64(100), 10, true))

		// Act
		promo, err := repo.GetByCode(ctx, "  summer20 ")

		// Assert
		require.NoError(t, err, "GetByCode should not fail on success")
		assert.Equal(t, "promo-1", promo.ID)
		assert.Equal(t, models.DiscountPercentage, promo.DiscountType)
		assert.Equal(t, int64(100000), promo.MinimumOrderAmount)
		require.NotNil(t, promo.UsageLimit)
		assert.Equal(t, 100, *promo.UsageLimit)
		assert.Equal(t, 10, promo.UsageCount)
		require.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
	})

	t.Run("Success - Null Usage Limit Means Unlimited", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(`SELECT (.+) FROM promotions WHERE UPPER\(code\) = \$1`).
			WithArgs("FREESHIP").
			WillReturnRows(sqlmock.NewRows(promotionRows).
				AddRow("promo-2", "FREESHIP", "free_shipping", int64(0), int64(0), start, end, nil, 0, true))

		// Act
		promo, err := repo.GetByCode(ctx, "FREESHIP")

		// Assert
		require.NoError(t, err)
		assert.Nil(t, promo.UsageLimit)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(`SELECT (.+) FROM promotions WHERE UPPER\(code\) = \$1`).
			WithArgs("NOSUCHCODE").
			WillReturnError(sql.ErrNoRows)

		// Act
		promo, err := repo.GetByCode(ctx, "NOSUCHCODE")

		// Assert
		require.Error(t, err)
		assert.Nil(t, promo)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		dbError := errors.New("database connection failed")
		mock.ExpectQuery(`SELECT (.+) FROM promotions WHERE UPPER\(code\) = \$1`).
			WithArgs("SUMMER20").
			WillReturnError(dbError)

		// Act
		promo, err := repo.GetByCode(ctx, "SUMMER20")

		// Assert
		require.Error(t, err)
		assert.Nil(t, promo)
		assert.ErrorIs(t, err, dbError)
		assert.ErrorContains(t, err, "querying promotion by code")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListActive(t *testing.T) {
	repo, mock := setupPromotionRepoTest(t)
	ctx := t.Context()

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(`SELECT (.+) FROM promotions WHERE is_active`).
			WillReturnRows(sqlmock.NewRows(promotionRows).
				AddRow("promo-1", "SUMMER20", "percentage", int64(20), int64(100000), start, end, int64(100), 10, true).
				AddRow("promo-2", "FLAT500", "fixed_amount", int64(50000), int64(0), start, end, nil, 0, true))

		// Act
		promotions, err := repo.ListActive(ctx)

		// Assert
		require.NoError(t, err)
		require.Len(t, promotions, 2)
		assert.Equal(t, "SUMMER20", promotions[0].Code)
		assert.Equal(t, models.DiscountFixedAmount, promotions[1].DiscountType)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Empty", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(`SELECT (.+) FROM promotions WHERE is_active`).
			WillReturnRows(sqlmock.NewRows(promotionRows))

		// Act
		promotions, err := repo.ListActive(ctx)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, promotions)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		dbError := errors.New("query failed")
		mock.ExpectQuery(`SELECT (.+) FROM promotions WHERE is_active`).
			WillReturnError(dbError)

		// Act
		promotions, err := repo.ListActive(ctx)

		// Assert
		require.Error(t, err)
		assert.Nil(t, promotions)
		assert.ErrorIs(t, err, dbError)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestIncrementUsage(t *testing.T) {
	repo, mock := setupPromotionRepoTest(t)
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mock.ExpectExec(`UPDATE promotions SET usage_count = COALESCE\(usage_count, 0\) \+ 1`).
			WithArgs("promo-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.IncrementUsage(ctx, "promo-1")

		// Assert
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Limit Exhausted At Commit", func(t *testing.T) {
		// Arrange: the guarded update matches no row.
		mock.ExpectExec(`UPDATE promotions SET usage_count = COALESCE\(usage_count, 0\) \+ 1`).
			WithArgs("promo-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		// Act
		err := repo.IncrementUsage(ctx, "promo-1")

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrUsageExhausted)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		dbError := errors.New("update failed")
		mock.ExpectExec(`UPDATE promotions SET usage_count = COALESCE\(usage_count, 0\) \+ 1`).
			WithArgs("promo-1").
			WillReturnError(dbError)

		// Act
		err := repo.IncrementUsage(ctx, "promo-1")

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, dbError)
		assert.ErrorContains(t, err, "failed to increment promotion usage")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
