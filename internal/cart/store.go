// Package cart owns the authoritative in-memory representation of one
// shopper's cart and mirrors every mutation to the persistence layer.
package cart

import (
	"context"

	appErrors "github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/errors"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/models"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/storage"
)

// Store holds at most one line item per product, in insertion order.
// Instances are scoped to one shopper session and are not safe for
// concurrent use; no two logical owners mutate the same session.
type Store struct {
	kv    storage.Store
	key   string
	items []models.CartLineItem
	index map[string]int
}

// NewStore loads the persisted cart for the session. A missing or corrupt
// record yields an empty cart, never an error: corruption is treated as
// "nothing saved".
func NewStore(ctx context.Context, kv storage.Store, sessionID string) *Store {

	s := &Store{
		kv:    kv,
		key:   storage.Key(sessionID, storage.CartRecord),
		index: make(map[string]int),
	}

	var persisted []models.CartLineItem

	found, err := kv.Get(ctx, s.key, &persisted)
	if err != nil || !found {
		return s
	}

	for _, item := range persisted {
		if item.ProductID == "" || item.Quantity <= 0 {
			continue
		}

		if _, exists := s.index[item.ProductID]; exists {
			continue
		}

		s.index[item.ProductID] = len(s.items)
		s.items = append(s.items, item)
	}

	return s
}

// AddItem merges the quantity into an existing line for the product or
// appends a new line. The resulting quantity must stay positive.
func (s *Store) AddItem(ctx context.Context, product models.ProductRef, quantity int) error {

	if pos, exists := s.index[product.ProductID]; exists {

		newQuantity := s.items[pos].Quantity + quantity
		if newQuantity <= 0 {
			return appErrors.InvalidQuantityError("Resulting quantity must be positive")
		}

		s.items[pos].Quantity = newQuantity

		return s.persist(ctx)
	}

	if quantity <= 0 {
		return appErrors.InvalidQuantityError("Quantity must be positive")
	}

	s.index[product.ProductID] = len(s.items)
	s.items = append(s.items, models.CartLineItem{
		ProductID: product.ProductID,
		Name:      product.Name,
		UnitPrice: product.UnitPrice,
		ImageRef:  product.ImageRef,
		Quantity:  quantity,
	})

	return s.persist(ctx)
}

// UpdateQuantity sets the quantity directly. Removal must be explicit via
// RemoveItem; a non-positive quantity is rejected rather than treated as
// removal.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) error {

	if quantity <= 0 {
		return appErrors.InvalidQuantityError("Quantity must be positive")
	}

	pos, exists := s.index[productID]
	if !exists {
		return appErrors.BadRequestError("Item not found in the cart")
	}

	s.items[pos].Quantity = quantity

	return s.persist(ctx)
}

// RemoveItem is idempotent: removing an absent product is a no-op.
func (s *Store) RemoveItem(ctx context.Context, productID string) error {

	pos, exists := s.index[productID]
	if !exists {
		return nil
	}

	s.items = append(s.items[:pos], s.items[pos+1:]...)

	delete(s.index, productID)

	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i].ProductID] = i
	}

	return s.persist(ctx)
}

func (s *Store) Clear(ctx context.Context) error {

	s.items = nil
	s.index = make(map[string]int)

	return s.persist(ctx)
}

// ItemCount is the sum of quantities, the number shown on the cart badge.
func (s *Store) ItemCount() int {

	var count int

	for _, item := range s.items {
		count += item.Quantity
	}

	return count
}

func (s *Store) Subtotal() int64 {

	var subtotal int64

	for _, item := range s.items {
		subtotal += item.LineTotal()
	}

	return subtotal
}

// Items returns a snapshot copy in display order.
func (s *Store) Items() []models.CartLineItem {

	items := make([]models.CartLineItem, len(s.items))
	copy(items, s.items)

	return items
}

func (s *Store) View() *models.CartView {
	return &models.CartView{
		Items:     s.Items(),
		ItemCount: s.ItemCount(),
		Subtotal:  s.Subtotal(),
	}
}

// persist writes the full snapshot in the same logical operation as the
// mutation. On failure the in-memory state stays authoritative for the
// process lifetime and the error is surfaced to the caller.
func (s *Store) persist(ctx context.Context) error {

	items := s.items
	if items == nil {
		items = []models.CartLineItem{}
	}

	if err := s.kv.Set(ctx, s.key, items); err != nil {
		return appErrors.StorageError("Failed to persist cart").WithError(err)
	}

	return nil
}
