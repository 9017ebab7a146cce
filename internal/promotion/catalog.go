package promotion

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/models"
)

// Source feeds the catalog with the promotions the backend currently
// considers active.
type Source interface {
	ListActive(ctx context.Context) ([]models.Promotion, error)
}

// Catalog caches the most recent fetch of active promotions so codes can be
// shown and pre-checked without a round trip. It is a convenience, not the
// source of truth: decisions that depend on time or usage counts should go
// through a fresh lookup. Unlike the per-session stores the catalog is
// shared across sessions, hence the lock.
type Catalog struct {
	source Source

	mu        sync.RWMutex
	byCode    map[string]models.Promotion
	active    []models.Promotion
	fetchedAt time.Time
}

func NewCatalog(source Source) *Catalog {
	return &Catalog{
		source: source,
		byCode: make(map[string]models.Promotion),
	}
}

// Refresh replaces the cached set with a fresh fetch. The previous cache
// stays in place when the fetch fails.
func (c *Catalog) Refresh(ctx context.Context) error {

	promotions, err := c.source.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh promotion catalog: %w", err)
	}

	byCode := make(map[string]models.Promotion, len(promotions))
	for _, promo := range promotions {
		byCode[NormalizeCode(promo.Code)] = promo
	}

	c.mu.Lock()
	c.byCode = byCode
	c.active = promotions
	c.fetchedAt = time.Now()
	c.mu.Unlock()

	return nil
}

// FindByCode resolves against the cached set only.
func (c *Catalog) FindByCode(code string) (*models.Promotion, bool) {

	c.mu.RLock()
	promo, found := c.byCode[NormalizeCode(code)]
	c.mu.RUnlock()

	if !found {
		return nil, false
	}

	return &promo, true
}

// Active returns a snapshot of the cached promotions in fetch order.
func (c *Catalog) Active() []models.Promotion {

	c.mu.RLock()
	defer c.mu.RUnlock()

	active := make([]models.Promotion, len(c.active))
	copy(active, c.active)

	return active
}

func (c *Catalog) FetchedAt() time.Time {

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.fetchedAt
}

// Lookup adapts the cached catalog to the validator's lookup contract.
func (c *Catalog) Lookup() LookupFunc {
	return c.FindByCode
}
