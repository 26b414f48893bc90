package entity

import "github.com/shopspring/decimal"

// CartLine línea del carrito: ID es el ID del producto; Product es la copia
// tomada al agregar. Quantity siempre positiva.
type CartLine struct {
	ID       string  `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal precio unitario * cantidad.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
