package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Inventory   int             `json:"inventory"`
	Rating      float64         `json:"rating"`
	StockStatus string          `json:"stock_status"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Meta  ListMeta          `json:"meta"`
}

// CategoryListResponse categorías fijas del catálogo.
type CategoryListResponse struct {
	Items []string `json:"items"`
}

// NewProductResponse mapea la entidad a su salida.
func NewProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Image:       p.Image,
		Category:    p.Category,
		Inventory:   p.Inventory,
		Rating:      p.Rating,
		StockStatus: p.StockStatus(),
	}
}

// NewProductListResponse mapea una lista; nunca devuelve Items nil.
func NewProductListResponse(products []entity.Product) *ProductListResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, NewProductResponse(p))
	}
	return &ProductListResponse{Items: items, Meta: ListMeta{Count: len(items)}}
}
