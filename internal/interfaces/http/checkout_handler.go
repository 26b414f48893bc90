package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/billing"
	"github.com/jhoicas/tienda-api/internal/domain/checkout"
)

// CheckoutHandler resumen, prellenado, órdenes y cotización PDF.
type CheckoutHandler struct {
	uc *billing.CheckoutUseCase
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(uc *billing.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del checkout
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  dto.CheckoutSummaryResponse
// @Router       /api/checkout/summary [get]
func (h *CheckoutHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.Summary())
}

// Prefill godoc
// @Summary      Formulario prellenado con la identidad actual
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  checkout.Form
// @Router       /api/checkout/prefill [get]
func (h *CheckoutHandler) Prefill(c *fiber.Ctx) error {
	return c.JSON(h.uc.Prefill())
}

// PlaceOrder godoc
// @Summary      Colocar orden (simulada)
// @Description  Valida todos los campos, espera la demora simulada y vacía el carrito.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body  checkout.Form  true  "Formulario de checkout"
// @Success      201   {object}  dto.OrderResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/checkout/orders [post]
func (h *CheckoutHandler) PlaceOrder(c *fiber.Ctx) error {
	var in checkout.Form
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.PlaceOrder(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// QuotePDF godoc
// @Summary      Descargar cotización en PDF
// @Tags         checkout
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/checkout/quote.pdf [get]
func (h *CheckoutHandler) QuotePDF(c *fiber.Ctx) error {
	b, filename, err := h.uc.QuotePDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(b)
}
