package entity

import "github.com/shopspring/decimal"

// Categorías del catálogo.
const (
	CategoryElectronics = "electronics"
	CategoryClothing    = "clothing"
	CategoryAccessories = "accessories"
	CategoryHome        = "home"
)

// Estados de stock derivados del inventario.
const (
	StockIn  = "in_stock"
	StockLow = "low_stock"
	StockOut = "out_of_stock"
)

// lowStockLimit por encima de este inventario el producto se considera con stock holgado.
const lowStockLimit = 10

// Categories devuelve las categorías válidas en el orden en que se muestran.
func Categories() []string {
	return []string{CategoryElectronics, CategoryClothing, CategoryAccessories, CategoryHome}
}

// IsValidCategory indica si c es una de las categorías fijas.
func IsValidCategory(c string) bool {
	switch c {
	case CategoryElectronics, CategoryClothing, CategoryAccessories, CategoryHome:
		return true
	}
	return false
}

// Product representa un producto del catálogo. Inmutable una vez obtenido;
// Inventory solo lo cambia un sistema externo de fulfillment.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Inventory   int             `json:"inventory"`
	Rating      float64         `json:"rating"` // 0.0 - 5.0
}

// StockStatus clasifica el inventario: in_stock (>10), low_stock (1..10), out_of_stock (0).
func (p Product) StockStatus() string {
	switch {
	case p.Inventory > lowStockLimit:
		return StockIn
	case p.Inventory > 0:
		return StockLow
	default:
		return StockOut
	}
}
