package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/catalog"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// CatalogHandler maneja las peticiones HTTP del catálogo (público).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos con filtros
// @Tags         catalog
// @Produce      json
// @Param        category   query  string  false  "Categoría exacta"
// @Param        min_price  query  string  false  "Precio mínimo (inclusivo)"
// @Param        max_price  query  string  false  "Precio máximo (inclusivo)"
// @Param        q          query  string  false  "Texto en nombre o descripción"
// @Param        sort       query  string  false  "price-asc | price-desc | name-asc | name-desc | rating-desc"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Featured godoc
// @Summary      Productos destacados
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products/featured [get]
func (h *CatalogHandler) Featured(c *fiber.Ctx) error {
	out, err := h.uc.Featured(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         catalog
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Listar categorías
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.uc.Categories())
}

// ByCategory godoc
// @Summary      Productos de una categoría
// @Tags         catalog
// @Produce      json
// @Param        category  path  string  true  "Categoría"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{category}/products [get]
func (h *CatalogHandler) ByCategory(c *fiber.Ctx) error {
	category := c.Params("category")
	if !entity.IsValidCategory(category) {
		return writeError(c, fmt.Errorf("%w: categoría %q", domain.ErrNotFound, category))
	}
	out, err := h.uc.ByCategory(c.UserContext(), category)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func parseFilter(c *fiber.Ctx) (catalog.Filter, error) {
	return catalog.ParseFilter(c.Query("category"), c.Query("min_price"), c.Query("max_price"), c.Query("q"), c.Query("sort"))
}
