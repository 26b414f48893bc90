// Package memory contiene adaptadores en memoria: el catálogo fijo y un StateStorage volátil.
package memory

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/simulate"
)

var _ repository.CatalogRepository = (*Catalog)(nil)

// Latency demoras simuladas por operación.
type Latency struct {
	All        time.Duration
	ByID       time.Duration
	ByCategory time.Duration
}

// DefaultLatency 500ms listado, 300ms detalle, 400ms categoría.
func DefaultLatency() Latency {
	return Latency{All: 500 * time.Millisecond, ByID: 300 * time.Millisecond, ByCategory: 400 * time.Millisecond}
}

// Catalog catálogo inmutable en memoria. Seguro para uso concurrente: nunca se escribe
// después de construirse y siempre devuelve copias.
type Catalog struct {
	products []entity.Product
	latency  Latency
}

// NewCatalog construye el catálogo con los 8 productos fijos.
func NewCatalog(latency Latency) *Catalog {
	return &Catalog{products: seedProducts(), latency: latency}
}

// FetchAll devuelve todos los productos en el orden del catálogo.
func (c *Catalog) FetchAll(ctx context.Context) ([]entity.Product, error) {
	if err := simulate.Wait(ctx, c.latency.All); err != nil {
		return nil, err
	}
	return slices.Clone(c.products), nil
}

// FetchByID busca por ID exacto.
func (c *Catalog) FetchByID(ctx context.Context, id string) (entity.Product, error) {
	if err := simulate.Wait(ctx, c.latency.ByID); err != nil {
		return entity.Product{}, err
	}
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return entity.Product{}, fmt.Errorf("%w: producto %q", domain.ErrNotFound, id)
}

// FetchByCategory filtra por categoría exacta; una categoría desconocida devuelve lista vacía.
func (c *Catalog) FetchByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	if err := simulate.Wait(ctx, c.latency.ByCategory); err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0, len(c.products))
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func seedProducts() []entity.Product {
	const img = "?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"
	return []entity.Product{
		{
			ID:          "1",
			Name:        "Premium Wireless Headphones",
			Price:       decimal.RequireFromString("299.99"),
			Description: "High-quality wireless headphones with noise cancellation and premium sound quality.",
			Image:       "https://images.pexels.com/photos/3394665/pexels-photo-3394665.jpeg" + img,
			Category:    entity.CategoryElectronics,
			Inventory:   15,
			Rating:      4.8,
		},
		{
			ID:          "2",
			Name:        "Slim Fit Cotton T-Shirt",
			Price:       decimal.RequireFromString("29.99"),
			Description: "Comfortable and stylish slim fit t-shirt made from 100% organic cotton.",
			Image:       "https://images.pexels.com/photos/5698851/pexels-photo-5698851.jpeg" + img,
			Category:    entity.CategoryClothing,
			Inventory:   50,
			Rating:      4.5,
		},
		{
			ID:          "3",
			Name:        "Smart Watch Series 5",
			Price:       decimal.RequireFromString("399.99"),
			Description: "The latest smartwatch with health monitoring, GPS, and app connectivity.",
			Image:       "https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg" + img,
			Category:    entity.CategoryElectronics,
			Inventory:   8,
			Rating:      4.9,
		},
		{
			ID:          "4",
			Name:        "Leather Messenger Bag",
			Price:       decimal.RequireFromString("149.99"),
			Description: "Handcrafted genuine leather messenger bag with multiple compartments.",
			Image:       "https://images.pexels.com/photos/1152077/pexels-photo-1152077.jpeg" + img,
			Category:    entity.CategoryAccessories,
			Inventory:   12,
			Rating:      4.6,
		},
		{
			ID:          "5",
			Name:        "Ultra HD 4K Smart TV",
			Price:       decimal.RequireFromString("1299.99"),
			Description: "55-inch Ultra HD Smart TV with HDR and built-in streaming apps.",
			Image:       "https://images.pexels.com/photos/6976094/pexels-photo-6976094.jpeg" + img,
			Category:    entity.CategoryElectronics,
			Inventory:   5,
			Rating:      4.7,
		},
		{
			ID:          "6",
			Name:        "Designer Sunglasses",
			Price:       decimal.RequireFromString("199.99"),
			Description: "Premium polarized sunglasses with UV protection and stylish design.",
			Image:       "https://images.pexels.com/photos/701877/pexels-photo-701877.jpeg" + img,
			Category:    entity.CategoryAccessories,
			Inventory:   20,
			Rating:      4.4,
		},
		{
			ID:          "7",
			Name:        "Wireless Bluetooth Speaker",
			Price:       decimal.RequireFromString("79.99"),
			Description: "Portable wireless speaker with 20-hour battery life and waterproof design.",
			Image:       "https://images.pexels.com/photos/1706694/pexels-photo-1706694.jpeg" + img,
			Category:    entity.CategoryElectronics,
			Inventory:   25,
			Rating:      4.3,
		},
		{
			ID:          "8",
			Name:        "Premium Coffee Maker",
			Price:       decimal.RequireFromString("149.99"),
			Description: "Programmable coffee maker with thermal carafe and precision brewing.",
			Image:       "https://images.pexels.com/photos/3014019/pexels-photo-3014019.jpeg" + img,
			Category:    entity.CategoryHome,
			Inventory:   10,
			Rating:      4.8,
		},
	}
}
