package usecase

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/state"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/internal/domain/wishlist"
)

// WishlistUseCase host del reducer de la wishlist; persiste bajo "wishlist",
// independiente del carrito.
type WishlistUseCase struct {
	mu      sync.Mutex
	state   wishlist.State
	storage repository.StateStorage
	catalog repository.CatalogRepository
	cart    *CartUseCase
}

// NewWishlistUseCase hidrata la wishlist (best-effort) y construye el caso de uso.
func NewWishlistUseCase(ctx context.Context, storage repository.StateStorage, catalog repository.CatalogRepository, cart *CartUseCase) *WishlistUseCase {
	items, _ := state.Load[[]entity.Product](ctx, storage, state.KeyWishlist)
	return &WishlistUseCase{
		state:   wishlist.Hydrate(items),
		storage: storage,
		catalog: catalog,
		cart:    cart,
	}
}

// Get devuelve los productos guardados.
func (uc *WishlistUseCase) Get() *dto.WishlistResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return dto.NewWishlistResponse(slices.Clone(uc.state.Items))
}

// Contains indica si el producto está guardado.
func (uc *WishlistUseCase) Contains(productID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state.Contains(productID)
}

// Toggle quita el producto si está guardado; si no, lo resuelve en el catálogo y lo agrega.
func (uc *WishlistUseCase) Toggle(ctx context.Context, productID string) (*dto.WishlistToggleResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	p, saved := uc.state.Get(productID)
	if !saved {
		var err error
		if p, err = uc.catalog.FetchByID(ctx, productID); err != nil {
			return nil, err
		}
	}
	if err := uc.apply(ctx, wishlist.Toggle{Product: p}); err != nil {
		return nil, err
	}
	return &dto.WishlistToggleResponse{
		Added:    !saved,
		Wishlist: *dto.NewWishlistResponse(uc.state.Items),
	}, nil
}

// Remove quita el producto si está guardado.
func (uc *WishlistUseCase) Remove(ctx context.Context, productID string) (*dto.WishlistResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.apply(ctx, wishlist.Remove{ProductID: productID}); err != nil {
		return nil, err
	}
	return dto.NewWishlistResponse(uc.state.Items), nil
}

// Clear vacía la wishlist.
func (uc *WishlistUseCase) Clear(ctx context.Context) (*dto.WishlistResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.apply(ctx, wishlist.Clear{}); err != nil {
		return nil, err
	}
	return dto.NewWishlistResponse(uc.state.Items), nil
}

// MoveToCart agrega al carrito una unidad de la copia guardada y, si se pide, la quita de la wishlist.
// domain.ErrNotFound si el producto no está guardado.
func (uc *WishlistUseCase) MoveToCart(ctx context.Context, productID string, removeFromWishlist bool) (*dto.MoveToCartResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	p, ok := uc.state.Get(productID)
	if !ok {
		return nil, fmt.Errorf("%w: producto %q no está en la wishlist", domain.ErrNotFound, productID)
	}
	cartResp, err := uc.cart.AddProduct(ctx, p, 1)
	if err != nil {
		return nil, err
	}
	if removeFromWishlist {
		if err := uc.apply(ctx, wishlist.Remove{ProductID: productID}); err != nil {
			return nil, err
		}
	}
	return &dto.MoveToCartResponse{
		Cart:     *cartResp,
		Wishlist: *dto.NewWishlistResponse(uc.state.Items),
	}, nil
}

// apply requiere uc.mu tomado.
func (uc *WishlistUseCase) apply(ctx context.Context, a wishlist.Action) error {
	uc.state = wishlist.Reduce(uc.state, a)
	return state.Save(ctx, uc.storage, state.KeyWishlist, uc.state.Items)
}
