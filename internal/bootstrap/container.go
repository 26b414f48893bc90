// Package bootstrap arma las dependencias compartidas por la API y la CLI.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/billing"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/checkout"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/internal/infrastructure/filestore"
	"github.com/jhoicas/tienda-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/tienda-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tienda-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/tienda-api/internal/interfaces/http"
	"github.com/jhoicas/tienda-api/pkg/config"
)

// Container casos de uso listos para usar. Close libera el almacenamiento.
type Container struct {
	Catalog  *usecase.CatalogUseCase
	Cart     *usecase.CartUseCase
	Wishlist *usecase.WishlistUseCase
	Auth     *auth.AuthUseCase
	Checkout *billing.CheckoutUseCase

	closeFn func()
}

// New abre el almacenamiento configurado, hidrata los stores y construye los casos de uso.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	storage, closeFn, err := OpenStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	catalogRepo := memory.NewCatalog(memory.Latency{
		All:        cfg.Catalog.LatencyAll,
		ByID:       cfg.Catalog.LatencyByID,
		ByCategory: cfg.Catalog.LatencyByCategory,
	})
	policy := checkout.Policy{
		ShippingFee:           cfg.Checkout.ShippingFee,
		FreeShippingThreshold: cfg.Checkout.FreeShippingThreshold,
		TaxRate:               cfg.Checkout.TaxRate,
	}

	cartUC := usecase.NewCartUseCase(ctx, storage, catalogRepo)
	authUC := auth.NewAuthUseCase(ctx, storage)
	return &Container{
		Catalog:  usecase.NewCatalogUseCase(catalogRepo),
		Cart:     cartUC,
		Wishlist: usecase.NewWishlistUseCase(ctx, storage, catalogRepo, cartUC),
		Auth:     authUC,
		Checkout: billing.NewCheckoutUseCase(
			cartUC, authUC, infrapdf.NewMarotoQuoteGenerator(cfg.App.Name),
			policy, cfg.Checkout.OrderDelay,
		),
		closeFn: closeFn,
	}, nil
}

// RouterDeps dependencias para el router HTTP.
func (c *Container) RouterDeps() httpRouter.RouterDeps {
	return httpRouter.RouterDeps{
		CatalogUC:  c.Catalog,
		CartUC:     c.Cart,
		WishlistUC: c.Wishlist,
		AuthUC:     c.Auth,
		CheckoutUC: c.Checkout,
	}
}

// Close libera conexiones abiertas por el almacenamiento.
func (c *Container) Close() {
	if c.closeFn != nil {
		c.closeFn()
	}
}

// OpenStorage selecciona el adaptador según STORAGE_DRIVER.
func OpenStorage(ctx context.Context, cfg *config.Config) (repository.StateStorage, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn().Msg("almacenamiento en memoria: el estado se pierde al reiniciar")
		return memory.NewStorage(), func() {}, nil
	case config.StorageFile:
		fs, err := filestore.New(cfg.Storage.Dir)
		if err != nil {
			return nil, nil, fmt.Errorf("almacenamiento en archivos: %w", err)
		}
		log.Info().Str("dir", fs.Dir()).Msg("almacenamiento en archivos")
		return fs, func() {}, nil
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		s := postgres.NewStateStorage(pool)
		if err := s.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("esquema de estado: %w", err)
		}
		log.Info().Str("host", cfg.DB.Host).Msg("almacenamiento en PostgreSQL")
		return s, pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("STORAGE_DRIVER desconocido %q", cfg.Storage.Driver)
	}
}
