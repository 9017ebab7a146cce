package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/models"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/promotion"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/utils"
)

// ErrUsageExhausted is returned by IncrementUsage when the guarded update
// matches no row: the promotion hit its usage limit (or was deactivated)
// between the pre-flight check and the commit.
var ErrUsageExhausted = errors.New("promotion usage limit exhausted")

// PromotionRepository reads promotion records and performs the redemption
// increment. Records are created and mutated only by the administrative
// backend; this core never updates anything but usage_count, and that only
// through the guarded increment.
type PromotionRepository interface {
	GetByCode(ctx context.Context, code string) (*models.Promotion, error)
	ListActive(ctx context.Context) ([]models.Promotion, error)
	IncrementUsage(ctx context.Context, id string) error
}

type promotionRepository struct {
	DB *sql.DB
}

func NewPromotionRepo(db *sql.DB) PromotionRepository {
	return &promotionRepository{DB: db}
}

// A NULL usage_count is read as zero, per the record owner's convention for
// freshly created promotions.
const promotionColumns = `
	id, code, discount_type, discount_value, minimum_order_amount,
	start_date, end_date, usage_limit, COALESCE(usage_count, 0), is_active
`

func (r *promotionRepository) GetByCode(ctx context.Context, code string) (*models.Promotion, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + promotionColumns + `
		FROM promotions
		WHERE UPPER(code) = $1
	`

	row := r.DB.QueryRowContext(dbCtx, query, promotion.NormalizeCode(code))

	promo, err := scanPromotion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}

		return nil, fmt.Errorf("querying promotion by code: %w", err)
	}

	return promo, nil
}

func (r *promotionRepository) ListActive(ctx context.Context) ([]models.Promotion, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + promotionColumns + `
		FROM promotions
		WHERE is_active AND start_date <= NOW() AND end_date > NOW()
		ORDER BY start_date, code
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying active promotions: %w", err)
	}
	defer rows.Close()

	var promotions []models.Promotion

	for rows.Next() {
		promo, err := scanPromotion(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning promotion row: %w", err)
		}

		promotions = append(promotions, *promo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating promotion rows: %w", err)
	}

	return promotions, nil
}

// IncrementUsage performs the atomically-checked redemption increment: the
// usage-limit condition is re-evaluated inside the UPDATE, so two
// concurrent redemptions cannot both push usage_count over the limit.
func (r *promotionRepository) IncrementUsage(ctx context.Context, id string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE promotions
		SET usage_count = COALESCE(usage_count, 0) + 1
		WHERE id = $1
		  AND is_active
		  AND (usage_limit IS NULL OR COALESCE(usage_count, 0) < usage_limit)
	`

	result, err := r.DB.ExecContext(dbCtx, query, id)
	if err != nil {
		return fmt.Errorf("failed to increment promotion usage: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return ErrUsageExhausted
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPromotion(row rowScanner) (*models.Promotion, error) {

	promo := &models.Promotion{}

	var usageLimit sql.NullInt64

	err := row.Scan(
		&promo.ID,
		&promo.Code,
		&promo.DiscountType,
		&promo.DiscountValue,
		&promo.MinimumOrderAmount,
		&promo.StartDate,
		&promo.EndDate,
		&usageLimit,
		&promo.UsageCount,
		&promo.IsActive,
	)
	if err != nil {
		return nil, err
	}

	if usageLimit.Valid {
		limit := int(usageLimit.Int64)
		promo.UsageLimit = &limit
	}

	return promo, nil
}
