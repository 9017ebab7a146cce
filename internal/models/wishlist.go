package models

// WishlistEntry is a saved product reference. Unlike a cart line it carries no
// quantity; a product is either on the wishlist or it is not.
type WishlistEntry struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	ImageRef  string `json:"image_ref"`
}

type AddWishlistItemRequest struct {
	ProductRef
}

type WishlistView struct {
	Items []WishlistEntry `json:"items"`
	Count int             `json:"count"`
}
