package billing

import (
	"context"
	"time"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/checkout"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// CartReader parte del carrito que necesita el checkout.
type CartReader interface {
	Lines() []entity.CartLine
	Deduct(ctx context.Context, ordered []entity.CartLine) (*dto.CartResponse, error)
}

// IdentityReader identidad actual, si la hay.
type IdentityReader interface {
	CurrentUser() (entity.User, bool)
}

// Quote datos de una cotización lista para renderizar.
type Quote struct {
	Number   string
	IssuedAt time.Time
	Customer *entity.User
	Lines    []entity.CartLine
	Summary  checkout.Summary
	Policy   checkout.Policy
}

// QuotePDFGenerator renderiza una cotización a PDF.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, q Quote) ([]byte, error)
}
