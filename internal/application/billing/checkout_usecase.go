package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/checkout"
	"github.com/jhoicas/tienda-api/pkg/simulate"
)

const defaultCountry = "US"

// CheckoutUseCase resumen, prellenado, colocación simulada de órdenes y cotización en PDF.
type CheckoutUseCase struct {
	cart       CartReader
	identity   IdentityReader
	generator  QuotePDFGenerator
	policy     checkout.Policy
	orderDelay time.Duration
	now        func() time.Time
}

// NewCheckoutUseCase construye el caso de uso. generator puede ser nil si no se expone el PDF.
func NewCheckoutUseCase(
	cart CartReader,
	identity IdentityReader,
	generator QuotePDFGenerator,
	policy checkout.Policy,
	orderDelay time.Duration,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		cart:       cart,
		identity:   identity,
		generator:  generator,
		policy:     policy,
		orderDelay: orderDelay,
		now:        time.Now,
	}
}

// Summary totales del carrito actual. Un carrito vacío sigue pagando envío.
func (uc *CheckoutUseCase) Summary() *dto.CheckoutSummaryResponse {
	return dto.NewCheckoutSummaryResponse(checkout.Summarize(uc.cart.Lines(), uc.policy))
}

// Prefill formulario inicial a partir de la identidad: nombre partido en la primera y
// segunda palabra, correo, dirección y país por defecto.
func (uc *CheckoutUseCase) Prefill() checkout.Form {
	f := checkout.Form{Country: defaultCountry}
	u, ok := uc.identity.CurrentUser()
	if !ok {
		return f
	}
	words := strings.Fields(u.Name)
	if len(words) > 0 {
		f.FirstName = words[0]
	}
	if len(words) > 1 {
		f.LastName = words[1]
	}
	f.Email = u.Email
	f.Address = u.Address
	return f
}

// PlaceOrder valida, espera la demora simulada y descuenta del carrito las líneas ordenadas.
// Lo agregado al carrito durante la espera se conserva. El recibo no se almacena.
//
// Retorna:
//   - domain.ErrEmptyCart        si no hay líneas.
//   - checkout.FieldErrors       con todas las violaciones (errors.Is(err, domain.ErrValidation)).
//   - ctx.Err()                  si se cancela durante la espera; el carrito queda intacto.
func (uc *CheckoutUseCase) PlaceOrder(ctx context.Context, form checkout.Form) (*dto.OrderResponse, error) {
	lines := uc.cart.Lines()
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if fe := checkout.ValidateForm(form); fe != nil {
		return nil, fe
	}
	if err := simulate.Wait(ctx, uc.orderDelay); err != nil {
		return nil, err
	}

	summary := checkout.Summarize(lines, uc.policy)
	order := &dto.OrderResponse{
		ID:       uuid.New().String(),
		Email:    strings.TrimSpace(form.Email),
		Status:   dto.OrderStatusPending,
		Items:    dto.NewOrderItems(lines),
		Summary:  *dto.NewCheckoutSummaryResponse(summary),
		PlacedAt: uc.now().UTC(),
	}
	if u, ok := uc.identity.CurrentUser(); ok {
		order.UserID = u.ID
	}

	if _, err := uc.cart.Deduct(ctx, lines); err != nil {
		return nil, fmt.Errorf("checkout: descontar carrito: %w", err)
	}
	log.Info().
		Str("order_id", order.ID).
		Int("items", summary.ItemCount).
		Str("total", summary.Total.StringFixed(2)).
		Msg("orden colocada")
	return order, nil
}

// QuotePDF renderiza la cotización del carrito actual. Devuelve bytes y nombre de archivo.
func (uc *CheckoutUseCase) QuotePDF(ctx context.Context) ([]byte, string, error) {
	if uc.generator == nil {
		return nil, "", errors.New("checkout: generador de PDF no configurado")
	}
	lines := uc.cart.Lines()
	if len(lines) == 0 {
		return nil, "", domain.ErrEmptyCart
	}

	now := uc.now()
	q := Quote{
		Number:   "COT-" + now.Format("20060102-150405"),
		IssuedAt: now,
		Lines:    lines,
		Summary:  checkout.Summarize(lines, uc.policy),
		Policy:   uc.policy,
	}
	if u, ok := uc.identity.CurrentUser(); ok {
		q.Customer = &u
	}

	pdfBytes, err := uc.generator.GenerateQuotePDF(ctx, q)
	if err != nil {
		return nil, "", fmt.Errorf("checkout: generar cotización: %w", err)
	}
	return pdfBytes, strings.ToLower(q.Number) + ".pdf", nil
}
