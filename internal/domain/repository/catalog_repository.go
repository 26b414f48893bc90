package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// CatalogRepository puerto de solo lectura del catálogo (DIP).
// Cada llamada simula un viaje de red; la cancelación la controla el llamador vía ctx.
type CatalogRepository interface {
	FetchAll(ctx context.Context) ([]entity.Product, error)
	// FetchByID devuelve domain.ErrNotFound si el producto no existe.
	FetchByID(ctx context.Context, id string) (entity.Product, error)
	FetchByCategory(ctx context.Context, category string) ([]entity.Product, error)
}
