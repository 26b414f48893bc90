package usecase

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/catalog"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// featuredCount cantidad de productos destacados en la portada.
const featuredCount = 4

// CatalogUseCase casos de uso de lectura del catálogo: listado filtrado, detalle y categorías.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// List aplica el filtro sobre el catálogo completo.
func (uc *CatalogUseCase) List(ctx context.Context, f catalog.Filter) (*dto.ProductListResponse, error) {
	all, err := uc.repo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewProductListResponse(catalog.Apply(all, f)), nil
}

// Featured primeros productos del catálogo para la portada.
func (uc *CatalogUseCase) Featured(ctx context.Context) (*dto.ProductListResponse, error) {
	all, err := uc.repo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) > featuredCount {
		all = all[:featuredCount]
	}
	return dto.NewProductListResponse(all), nil
}

// GetByID obtiene un producto; domain.ErrNotFound si no existe.
func (uc *CatalogUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewProductResponse(p)
	return &out, nil
}

// ByCategory productos de una categoría exacta.
func (uc *CatalogUseCase) ByCategory(ctx context.Context, category string) (*dto.ProductListResponse, error) {
	list, err := uc.repo.FetchByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return dto.NewProductListResponse(list), nil
}

// Categories categorías fijas.
func (uc *CatalogUseCase) Categories() *dto.CategoryListResponse {
	return &dto.CategoryListResponse{Items: entity.Categories()}
}
