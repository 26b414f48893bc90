// Package checkout deriva los totales de la orden a partir de las líneas del carrito
// y valida la forma del formulario de pago (no su validez ante un procesador).
package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/cart"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// Policy política plana de envío e impuestos.
type Policy struct {
	ShippingFee           decimal.Decimal // costo fijo de envío
	FreeShippingThreshold decimal.Decimal // envío gratis si el subtotal es estrictamente mayor
	TaxRate               decimal.Decimal // fracción sobre el subtotal: 0.08 = 8%
}

// DefaultPolicy envío 5.99, gratis sobre 50, impuesto 8%.
func DefaultPolicy() Policy {
	return Policy{
		ShippingFee:           decimal.RequireFromString("5.99"),
		FreeShippingThreshold: decimal.NewFromInt(50),
		TaxRate:               decimal.RequireFromString("0.08"),
	}
}

// Summary totales derivados; nunca se almacenan.
type Summary struct {
	Subtotal  decimal.Decimal
	Shipping  decimal.Decimal
	Tax       decimal.Decimal
	Total     decimal.Decimal
	ItemCount int
}

// Summarize calcula subtotal, envío, impuesto (redondeado a 2 decimales) y total.
func Summarize(lines []entity.CartLine, p Policy) Summary {
	subtotal := cart.Total(lines)

	shipping := p.ShippingFee
	if subtotal.GreaterThan(p.FreeShippingThreshold) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(p.TaxRate).Round(2)

	return Summary{
		Subtotal:  subtotal,
		Shipping:  shipping,
		Tax:       tax,
		Total:     subtotal.Add(shipping).Add(tax),
		ItemCount: cart.ItemCount(lines),
	}
}
