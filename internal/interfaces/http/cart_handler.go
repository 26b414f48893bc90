package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// CartHandler maneja las peticiones HTTP del carrito.
type CartHandler struct {
	uc *usecase.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *usecase.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get godoc
// @Summary      Ver carrito
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.Get())
}

// AddLine godoc
// @Summary      Agregar producto al carrito
// @Description  Si el producto ya está en el carrito se acumula la cantidad.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartLineRequest  true  "Producto y cantidad"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/lines [post]
func (h *CartHandler) AddLine(c *fiber.Ctx) error {
	var in dto.AddCartLineRequest
	if err := c.BodyParser(&in); err != nil || in.ProductID == "" {
		return badBody(c)
	}
	out, err := h.uc.Add(c.UserContext(), in.ProductID, in.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateLine godoc
// @Summary      Fijar cantidad de una línea
// @Description  Cantidad <= 0 elimina la línea; un producto ausente no cambia nada.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del producto"
// @Param        body  body  dto.UpdateCartLineRequest  true  "Cantidad"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cart/lines/{id} [put]
func (h *CartHandler) UpdateLine(c *fiber.Ctx) error {
	var in dto.UpdateCartLineRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetQuantity(c.UserContext(), c.Params("id"), in.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemoveLine godoc
// @Summary      Quitar producto del carrito
// @Tags         cart
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart/lines/{id} [delete]
func (h *CartHandler) RemoveLine(c *fiber.Ctx) error {
	out, err := h.uc.Remove(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Vaciar carrito
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	out, err := h.uc.Clear(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
