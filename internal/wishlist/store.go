// Package wishlist owns the set of products a shopper has saved for later.
// Entries carry no quantity; the persistence discipline matches the cart.
package wishlist

import (
	"context"

	appErrors "github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/errors"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/models"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/storage"
)

// Store keeps at most one entry per product, in insertion order. Scoped to
// one shopper session, not safe for concurrent use.
type Store struct {
	kv      storage.Store
	key     string
	entries []models.WishlistEntry
	index   map[string]int
}

// NewStore loads the persisted wishlist for the session; a missing or
// corrupt record yields an empty wishlist.
func NewStore(ctx context.Context, kv storage.Store, sessionID string) *Store {

	s := &Store{
		kv:    kv,
		key:   storage.Key(sessionID, storage.WishlistRecord),
		index: make(map[string]int),
	}

	var persisted []models.WishlistEntry

	found, err := kv.Get(ctx, s.key, &persisted)
	if err != nil || !found {
		return s
	}

	for _, entry := range persisted {
		if entry.ProductID == "" {
			continue
		}

		if _, exists := s.index[entry.ProductID]; exists {
			continue
		}

		s.index[entry.ProductID] = len(s.entries)
		s.entries = append(s.entries, entry)
	}

	return s
}

// AddItem is a no-op when the product is already saved: no duplicate entry,
// no counter.
func (s *Store) AddItem(ctx context.Context, product models.ProductRef) error {

	if _, exists := s.index[product.ProductID]; exists {
		return nil
	}

	s.index[product.ProductID] = len(s.entries)
	s.entries = append(s.entries, models.WishlistEntry{
		ProductID: product.ProductID,
		Name:      product.Name,
		UnitPrice: product.UnitPrice,
		ImageRef:  product.ImageRef,
	})

	return s.persist(ctx)
}

// RemoveItem is idempotent.
func (s *Store) RemoveItem(ctx context.Context, productID string) error {

	pos, exists := s.index[productID]
	if !exists {
		return nil
	}

	s.entries = append(s.entries[:pos], s.entries[pos+1:]...)

	delete(s.index, productID)

	for i := pos; i < len(s.entries); i++ {
		s.index[s.entries[i].ProductID] = i
	}

	return s.persist(ctx)
}

func (s *Store) Clear(ctx context.Context) error {

	s.entries = nil
	s.index = make(map[string]int)

	return s.persist(ctx)
}

func (s *Store) Contains(productID string) bool {
	_, exists := s.index[productID]

	return exists
}

func (s *Store) Count() int {
	return len(s.entries)
}

func (s *Store) Entries() []models.WishlistEntry {

	entries := make([]models.WishlistEntry, len(s.entries))
	copy(entries, s.entries)

	return entries
}

func (s *Store) View() *models.WishlistView {
	return &models.WishlistView{
		Items: s.Entries(),
		Count: s.Count(),
	}
}

func (s *Store) persist(ctx context.Context) error {

	entries := s.entries
	if entries == nil {
		entries = []models.WishlistEntry{}
	}

	if err := s.kv.Set(ctx, s.key, entries); err != nil {
		return appErrors.StorageError("Failed to persist wishlist").WithError(err)
	}

	return nil
}
