package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// WishlistHandler maneja las peticiones HTTP de la wishlist.
type WishlistHandler struct {
	uc *usecase.WishlistUseCase
}

// NewWishlistHandler construye el handler.
func NewWishlistHandler(uc *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{uc: uc}
}

// Get godoc
// @Summary      Ver wishlist
// @Tags         wishlist
// @Produce      json
// @Success      200  {object}  dto.WishlistResponse
// @Router       /api/wishlist [get]
func (h *WishlistHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.Get())
}

// Toggle godoc
// @Summary      Alternar producto en la wishlist
// @Tags         wishlist
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WishlistToggleRequest  true  "Producto"
// @Success      200   {object}  dto.WishlistToggleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/wishlist/toggle [post]
func (h *WishlistHandler) Toggle(c *fiber.Ctx) error {
	var in dto.WishlistToggleRequest
	if err := c.BodyParser(&in); err != nil || in.ProductID == "" {
		return badBody(c)
	}
	out, err := h.uc.Toggle(c.UserContext(), in.ProductID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Quitar producto de la wishlist
// @Tags         wishlist
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.WishlistResponse
// @Router       /api/wishlist/{id} [delete]
func (h *WishlistHandler) Remove(c *fiber.Ctx) error {
	out, err := h.uc.Remove(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Vaciar wishlist
// @Tags         wishlist
// @Produce      json
// @Success      200  {object}  dto.WishlistResponse
// @Router       /api/wishlist [delete]
func (h *WishlistHandler) Clear(c *fiber.Ctx) error {
	out, err := h.uc.Clear(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// MoveToCart godoc
// @Summary      Pasar producto guardado al carrito
// @Description  Agrega una unidad al carrito; opcionalmente lo quita de la wishlist.
// @Tags         wishlist
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true   "ID del producto"
// @Param        body  body  dto.MoveToCartRequest  false  "Opciones"
// @Success      200   {object}  dto.MoveToCartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/wishlist/{id}/move-to-cart [post]
func (h *WishlistHandler) MoveToCart(c *fiber.Ctx) error {
	var in dto.MoveToCartRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	out, err := h.uc.MoveToCart(c.UserContext(), c.Params("id"), in.RemoveFromWishlist)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
