package models

// CartLineItem is one row of a shopper's cart. Amounts are in piastres, the
// smallest currency unit, so discount arithmetic stays in integers.
type CartLineItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	ImageRef  string `json:"image_ref"`
	Quantity  int    `json:"quantity"`
}

func (li CartLineItem) LineTotal() int64 {
	return li.UnitPrice * int64(li.Quantity)
}

// ProductRef is the product identity the UI hands to the cart and wishlist.
type ProductRef struct {
	ProductID string `json:"product_id" validate:"required"`
	Name      string `json:"name"       validate:"required"`
	UnitPrice int64  `json:"unit_price" validate:"gte=0"`
	ImageRef  string `json:"image_ref"`
}

type AddCartItemRequest struct {
	ProductRef
	Quantity int `json:"quantity" validate:"omitempty,min=1"`
}

type UpdateQuantityRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"required,min=1"`
}

// CartView is the derived read model returned to the UI after every cart
// operation. ItemCount sums quantities, not rows.
type CartView struct {
	Items     []CartLineItem `json:"items"`
	ItemCount int            `json:"item_count"`
	Subtotal  int64          `json:"subtotal"`
}
