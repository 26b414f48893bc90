package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/checkout"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// Estados de la orden. Solo se emite pending: no hay fulfillment.
const OrderStatusPending = "pending"

// CheckoutSummaryResponse totales derivados del carrito.
type CheckoutSummaryResponse struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	Shipping     decimal.Decimal `json:"shipping"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
	ItemCount    int             `json:"item_count"`
	FreeShipping bool            `json:"free_shipping"`
}

// OrderItemResponse copia de una línea al momento de colocar la orden.
type OrderItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// OrderResponse recibo devuelto una sola vez; no se almacena.
type OrderResponse struct {
	ID       string                  `json:"id"`
	UserID   string                  `json:"user_id,omitempty"`
	Email    string                  `json:"email"`
	Status   string                  `json:"status"`
	Items    []OrderItemResponse     `json:"items"`
	Summary  CheckoutSummaryResponse `json:"summary"`
	PlacedAt time.Time               `json:"placed_at"`
}

// NewCheckoutSummaryResponse mapea el resumen de dominio.
func NewCheckoutSummaryResponse(s checkout.Summary) *CheckoutSummaryResponse {
	return &CheckoutSummaryResponse{
		Subtotal:     s.Subtotal,
		Shipping:     s.Shipping,
		Tax:          s.Tax,
		Total:        s.Total,
		ItemCount:    s.ItemCount,
		FreeShipping: s.Shipping.IsZero(),
	}
}

// NewOrderItems copia las líneas del carrito.
func NewOrderItems(lines []entity.CartLine) []OrderItemResponse {
	items := make([]OrderItemResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, OrderItemResponse{
			ProductID:   l.ID,
			ProductName: l.Product.Name,
			Quantity:    l.Quantity,
			Price:       l.Product.Price,
		})
	}
	return items
}
