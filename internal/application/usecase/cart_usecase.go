package usecase

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/state"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/cart"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// CartUseCase host del reducer del carrito: serializa las transiciones y persiste el
// estado completo bajo la clave "cart" después de cada una.
type CartUseCase struct {
	mu      sync.Mutex
	state   cart.State
	storage repository.StateStorage
	catalog repository.CatalogRepository
}

// NewCartUseCase hidrata el carrito desde el almacenamiento (best-effort) y construye el caso de uso.
func NewCartUseCase(ctx context.Context, storage repository.StateStorage, catalog repository.CatalogRepository) *CartUseCase {
	lines, _ := state.Load[[]entity.CartLine](ctx, storage, state.KeyCart)
	return &CartUseCase{
		state:   cart.Hydrate(lines),
		storage: storage,
		catalog: catalog,
	}
}

// Get devuelve el carrito actual con su total.
func (uc *CartUseCase) Get() *dto.CartResponse {
	return dto.NewCartResponse(uc.Lines())
}

// Lines copia de las líneas actuales.
func (uc *CartUseCase) Lines() []entity.CartLine {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return slices.Clone(uc.state.Lines)
}

// Add resuelve el producto en el catálogo y lo agrega. quantity debe ser positiva.
func (uc *CartUseCase) Add(ctx context.Context, productID string, quantity int) (*dto.CartResponse, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidInput)
	}
	p, err := uc.catalog.FetchByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return uc.AddProduct(ctx, p, quantity)
}

// AddProduct agrega una copia ya obtenida del producto (por ejemplo, desde la wishlist).
func (uc *CartUseCase) AddProduct(ctx context.Context, p entity.Product, quantity int) (*dto.CartResponse, error) {
	return uc.dispatch(ctx, cart.AddLine{Product: p, Quantity: quantity})
}

// SetQuantity fija la cantidad; quantity <= 0 elimina la línea.
func (uc *CartUseCase) SetQuantity(ctx context.Context, productID string, quantity int) (*dto.CartResponse, error) {
	return uc.dispatch(ctx, cart.SetQuantity{ProductID: productID, Quantity: quantity})
}

// Remove elimina la línea si existe.
func (uc *CartUseCase) Remove(ctx context.Context, productID string) (*dto.CartResponse, error) {
	return uc.dispatch(ctx, cart.RemoveLine{ProductID: productID})
}

// Clear vacía el carrito.
func (uc *CartUseCase) Clear(ctx context.Context) (*dto.CartResponse, error) {
	return uc.dispatch(ctx, cart.Clear{})
}

// Deduct descuenta las cantidades de ordered en una sola transición. Las líneas agregadas
// o aumentadas después de tomar ordered conservan la diferencia.
func (uc *CartUseCase) Deduct(ctx context.Context, ordered []entity.CartLine) (*dto.CartResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := uc.state
	for _, o := range ordered {
		if l, ok := next.Line(o.ID); ok {
			next = cart.Reduce(next, cart.SetQuantity{ProductID: o.ID, Quantity: l.Quantity - o.Quantity})
		}
	}
	return uc.commit(ctx, next)
}

// dispatch aplica la acción y persiste. Si la escritura falla el estado en memoria ya cambió
// y el error se devuelve al llamador.
func (uc *CartUseCase) dispatch(ctx context.Context, a cart.Action) (*dto.CartResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.commit(ctx, cart.Reduce(uc.state, a))
}

// commit requiere uc.mu tomado.
func (uc *CartUseCase) commit(ctx context.Context, next cart.State) (*dto.CartResponse, error) {
	uc.state = next
	if err := state.Save(ctx, uc.storage, state.KeyCart, uc.state.Lines); err != nil {
		return nil, err
	}
	return dto.NewCartResponse(uc.state.Lines), nil
}
