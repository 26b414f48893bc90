package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/cart"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// AddCartLineRequest entrada para agregar un producto al carrito.
type AddCartLineRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

// UpdateCartLineRequest entrada para fijar la cantidad; <= 0 elimina la línea.
type UpdateCartLineRequest struct {
	Quantity int `json:"quantity"`
}

// CartLineResponse salida de una línea del carrito.
type CartLineResponse struct {
	ID        string          `json:"id"`
	Product   ProductResponse `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartResponse carrito con total derivado.
type CartResponse struct {
	Lines     []CartLineResponse `json:"lines"`
	ItemCount int                `json:"item_count"`
	Total     decimal.Decimal    `json:"total"`
}

// NewCartResponse mapea las líneas y calcula total y cantidad de artículos.
func NewCartResponse(lines []entity.CartLine) *CartResponse {
	out := make([]CartLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, CartLineResponse{
			ID:        l.ID,
			Product:   NewProductResponse(l.Product),
			Quantity:  l.Quantity,
			LineTotal: l.Subtotal(),
		})
	}
	return &CartResponse{
		Lines:     out,
		ItemCount: cart.ItemCount(lines),
		Total:     cart.Total(lines),
	}
}
