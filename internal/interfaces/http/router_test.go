package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/billing"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/checkout"
	"github.com/jhoicas/tienda-api/internal/infrastructure/memory"
	"github.com/jhoicas/tienda-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/tienda-api/internal/interfaces/http"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// buildTestApp arma la API completa sobre almacenamiento en memoria y sin latencias.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	ctx := context.Background()
	storage := memory.NewStorage()
	cat := memory.NewCatalog(memory.Latency{})

	cartUC := usecase.NewCartUseCase(ctx, storage, cat)
	authUC := auth.NewAuthUseCase(ctx, storage)
	deps := apphttp.RouterDeps{
		CatalogUC:  usecase.NewCatalogUseCase(cat),
		CartUC:     cartUC,
		WishlistUC: usecase.NewWishlistUseCase(ctx, storage, cat, cartUC),
		AuthUC:     authUC,
		CheckoutUC: billing.NewCheckoutUseCase(cartUC, authUC, pdf.NewMarotoQuoteGenerator("Tienda"), checkout.DefaultPolicy(), 0),
	}

	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop().Zerolog()))
	apphttp.Router(app, deps)
	return app
}

// do lanza la petición y decodifica el cuerpo JSON en out (si no es nil).
func do(t *testing.T, app *fiber.App, method, path, body string, out any) int {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestCatalogRoutes(t *testing.T) {
	app := buildTestApp(t)

	var list dto.ProductListResponse
	assert.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/api/products?category=electronics&sort=price-asc", "", &list))
	require.Equal(t, 4, list.Meta.Count)
	assert.Equal(t, "7", list.Items[0].ID)
	assert.Equal(t, "5", list.Items[3].ID)

	list = dto.ProductListResponse{}
	assert.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/api/products?q=PREMIUM&min_price=100&max_price=200", "", &list))
	require.Len(t, list.Items, 2)
	assert.Equal(t, "6", list.Items[0].ID, "coincide por descripción")
	assert.Equal(t, "8", list.Items[1].ID)

	var featured dto.ProductListResponse
	assert.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/api/products/featured", "", &featured))
	assert.Len(t, featured.Items, 4)

	var p dto.ProductResponse
	assert.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/api/products/8", "", &p))
	assert.Equal(t, "Premium Coffee Maker", p.Name)
	assert.Equal(t, "149.99", p.Price.StringFixed(2))

	var cats dto.CategoryListResponse
	assert.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/api/categories", "", &cats))
	assert.Equal(t, []string{"electronics", "clothing", "accessories", "home"}, cats.Items)

	var home dto.ProductListResponse
	assert.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/api/categories/home/products", "", &home))
	assert.Len(t, home.Items, 1)
}

func TestCatalogRoutes_Errores(t *testing.T) {
	app := buildTestApp(t)

	cases := []struct {
		path   string
		status int
		code   string
	}{
		{"/api/products/999", http.StatusNotFound, "NOT_FOUND"},
		{"/api/products?sort=random", http.StatusBadRequest, "INVALID_INPUT"},
		{"/api/products?min_price=abc", http.StatusBadRequest, "INVALID_INPUT"},
		{"/api/products?min_price=200&max_price=100", http.StatusBadRequest, "INVALID_INPUT"},
		{"/api/products?category=garden", http.StatusBadRequest, "INVALID_INPUT"},
		{"/api/categories/garden/products", http.StatusNotFound, "NOT_FOUND"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			var e dto.ErrorResponse
			assert.Equal(t, tc.status, do(t, app, http.MethodGet, tc.path, "", &e))
			assert.Equal(t, tc.code, e.Code)
		})
	}
}

func TestCartRoutes(t *testing.T) {
	app := buildTestApp(t)

	var out dto.CartResponse
	assert.Equal(t, http.StatusOK, do(t, app, http.MethodPost, "/api/cart/lines", `{"product_id":"1","quantity":1}`, &out))
	assert.Equal(t, http.StatusOK, do(t, app, http.MethodPost, "/api/cart/lines", `{"product_id":"2","quantity":2}`, &out))
	assert.Equal(t, http.StatusOK, do(t, app, http.MethodPost, "/api/cart/lines", `{"product_id":"7","quantity":1}`, &out))
	assert.Equal(t, "439.96", out.Total.StringFixed(2))

	assert.Equal(t, http.StatusOK, do(t, app, http.MethodPut, "/api/cart/lines/2", `{"quantity":3}`, &out))
	assert.Equal(t, 5, out.ItemCount)

	assert.Equal(t, http.StatusOK, do(t, app, http.MethodDelete, "/api/cart/lines/7", "", &out))
	assert.Len(t, out.Lines, 2)

	var e dto.ErrorResponse
	assert.Equal(t, http.StatusBadRequest, do(t, app, http.MethodPost, "/api/cart/lines", `{"product_id":"1","quantity":0}`, &e))
	assert.Equal(t, "INVALID_INPUT", e.Code)
	assert.Equal(t, http.StatusNotFound, do(t, app, http.MethodPost, "/api/cart/lines", `{"product_id":"999","quantity":1}`, &e))
	assert.Equal(t, http.StatusBadRequest, do(t, app, http.MethodPost, "/api/cart/lines", `{`, &e))

	assert.Equal(t, http.StatusOK, do(t, app, http.MethodDelete, "/api/cart", "", &out))
	assert.Empty(t, out.Lines)

	out = dto.CartResponse{}
	assert.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/api/cart", "", &out))
	assert.True(t, out.Total.IsZero())
}

func TestWishlistRoutes(t *testing.T) {
	app := buildTestApp(t)

	var toggled dto.WishlistToggleResponse
	assert.Equal(t, http.StatusOK, do(t, app, http.MethodPost, "/api/wishlist/toggle", `{"product_id":"4"}`, &toggled))
	assert.True(t, toggled.Added)

	var moved dto.MoveToCartResponse
	assert.Equal(t, http.StatusOK, do(t, app, http.MethodPost, "/api/wishlist/4/move-to-cart", `{"remove_from_wishlist":true}`, &moved))
	assert.Len(t, moved.Cart.Lines, 1)
	assert.Empty(t, moved.Wishlist.Items)

	var e dto.ErrorResponse
	assert.Equal(t, http.StatusNotFound, do(t, app, http.MethodPost, "/api/wishlist/4/move-to-cart", "", &e))

	assert.Equal(t, http.StatusOK, do(t, app, http.MethodPost, "/api/wishlist/toggle", `{"product_id":"1"}`, &toggled))
	var wl dto.WishlistResponse
	assert.Equal(t, http.StatusOK, do(t, app, http.MethodDelete, "/api/wishlist/1", "", &wl))
	assert.Empty(t, wl.Items)
	assert.Equal(t, http.StatusOK, do(t, app, http.MethodDelete, "/api/wishlist", "", &wl))
	assert.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/api/wishlist", "", &wl))
	assert.Empty(t, wl.Items)
}

func TestAuthRoutes(t *testing.T) {
	app := buildTestApp(t)

	var e dto.ErrorResponse
	assert.Equal(t, http.StatusUnauthorized, do(t, app, http.MethodGet, "/api/account", "", &e))
	assert.Equal(t, "UNAUTHORIZED", e.Code)

	assert.Equal(t, http.StatusUnauthorized, do(t, app, http.MethodPost, "/api/auth/login", `{"email":"demo@example.com","password":"nope"}`, &e))
	assert.Equal(t, "INVALID_CREDENTIALS", e.Code)

	var u dto.UserResponse
	assert.Equal(t, http.StatusOK, do(t, app, http.MethodPost, "/api/auth/login", `{"email":"demo@example.com","password":"password"}`, &u))
	assert.Equal(t, "Demo User", u.Name)

	var session dto.SessionResponse
	assert.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/api/auth/session", "", &session))
	assert.True(t, session.Authenticated)

	assert.Equal(t, http.StatusBadRequest, do(t, app, http.MethodPost, "/api/auth/register",
		`{"name":"Ana","email":"ana@example.com","password":"x","confirm_password":"y"}`, &e))

	assert.Equal(t, http.StatusCreated, do(t, app, http.MethodPost, "/api/auth/register",
		`{"name":"Ana Gómez","email":"ana@example.com","password":"x","confirm_password":"x"}`, &u))
	assert.Equal(t, "Ana Gómez", u.Name)
	assert.NotEqual(t, "1", u.ID)

	assert.Equal(t, http.StatusOK, do(t, app, http.MethodPost, "/api/auth/logout", "", &session))
	assert.False(t, session.Authenticated)
	assert.Equal(t, http.StatusUnauthorized, do(t, app, http.MethodGet, "/api/account", "", &e))
}

func TestCheckoutRoutes(t *testing.T) {
	app := buildTestApp(t)
	form := `{"firstName":"Demo","lastName":"User","email":"demo@example.com","address":"123 Main St",
		"city":"Anytown","state":"CA","zipCode":"12345","country":"US","cardName":"Demo User",
		"cardNumber":"4111 1111 1111 1111","expMonth":"12","expYear":"2030","cvv":"123"}`

	var e dto.ErrorResponse
	assert.Equal(t, http.StatusConflict, do(t, app, http.MethodPost, "/api/checkout/orders", form, &e))
	assert.Equal(t, "EMPTY_CART", e.Code)

	var summary dto.CheckoutSummaryResponse
	assert.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/api/checkout/summary", "", &summary))
	assert.Equal(t, "5.99", summary.Total.StringFixed(2))

	require.Equal(t, http.StatusOK, do(t, app, http.MethodPost, "/api/cart/lines", `{"product_id":"2","quantity":1}`, nil))

	assert.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/api/checkout/summary", "", &summary))
	assert.Equal(t, "38.38", summary.Total.StringFixed(2))
	assert.False(t, summary.FreeShipping)

	e = dto.ErrorResponse{}
	assert.Equal(t, http.StatusUnprocessableEntity, do(t, app, http.MethodPost, "/api/checkout/orders", `{"email":"x"}`, &e))
	assert.Equal(t, "VALIDATION", e.Code)
	assert.Len(t, e.Fields, 13)
	assert.Equal(t, checkout.MsgEmail, e.Fields["email"])

	req := httptest.NewRequest(http.MethodGet, "/api/checkout/quote.pdf", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))

	var order dto.OrderResponse
	assert.Equal(t, http.StatusCreated, do(t, app, http.MethodPost, "/api/checkout/orders", form, &order))
	assert.Equal(t, "38.38", order.Summary.Total.StringFixed(2))
	assert.Equal(t, dto.OrderStatusPending, order.Status)

	var cart dto.CartResponse
	assert.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/api/cart", "", &cart))
	assert.Empty(t, cart.Lines)
}

func TestCheckoutPrefill(t *testing.T) {
	app := buildTestApp(t)
	require.Equal(t, http.StatusOK, do(t, app, http.MethodPost, "/api/auth/login", `{"email":"demo@example.com","password":"password"}`, nil))

	var form checkout.Form
	assert.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/api/checkout/prefill", "", &form))
	assert.Equal(t, "Demo", form.FirstName)
	assert.Equal(t, "User", form.LastName)
	assert.Equal(t, "US", form.Country)
}
