package dto

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// WishlistToggleRequest entrada para alternar un producto en la wishlist.
type WishlistToggleRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// MoveToCartRequest entrada para pasar un producto guardado al carrito.
type MoveToCartRequest struct {
	RemoveFromWishlist bool `json:"remove_from_wishlist"`
}

// WishlistResponse productos guardados en orden de inserción.
type WishlistResponse struct {
	Items []ProductResponse `json:"items"`
	Meta  ListMeta          `json:"meta"`
}

// WishlistToggleResponse indica si el producto quedó guardado tras alternar.
type WishlistToggleResponse struct {
	Added    bool             `json:"added"`
	Wishlist WishlistResponse `json:"wishlist"`
}

// MoveToCartResponse estado resultante de ambos stores.
type MoveToCartResponse struct {
	Cart     CartResponse     `json:"cart"`
	Wishlist WishlistResponse `json:"wishlist"`
}

// NewWishlistResponse mapea los productos guardados.
func NewWishlistResponse(items []entity.Product) *WishlistResponse {
	list := NewProductListResponse(items)
	return &WishlistResponse{Items: list.Items, Meta: list.Meta}
}
