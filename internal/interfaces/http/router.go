package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/billing"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC  *usecase.CatalogUseCase
	CartUC     *usecase.CartUseCase
	WishlistUC *usecase.WishlistUseCase
	AuthUC     *auth.AuthUseCase
	CheckoutUC *billing.CheckoutUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	products := api.Group("/products")
	products.Get("/", catalogHandler.List)
	products.Get("/featured", catalogHandler.Featured)
	products.Get("/:id", catalogHandler.GetByID)
	api.Get("/categories", catalogHandler.Categories)
	api.Get("/categories/:category/products", catalogHandler.ByCategory)

	cartHandler := NewCartHandler(deps.CartUC)
	cart := api.Group("/cart")
	cart.Get("/", cartHandler.Get)
	cart.Delete("/", cartHandler.Clear)
	cart.Post("/lines", cartHandler.AddLine)
	cart.Put("/lines/:id", cartHandler.UpdateLine)
	cart.Delete("/lines/:id", cartHandler.RemoveLine)

	wishlistHandler := NewWishlistHandler(deps.WishlistUC)
	wishlist := api.Group("/wishlist")
	wishlist.Get("/", wishlistHandler.Get)
	wishlist.Delete("/", wishlistHandler.Clear)
	wishlist.Post("/toggle", wishlistHandler.Toggle)
	wishlist.Delete("/:id", wishlistHandler.Remove)
	wishlist.Post("/:id/move-to-cart", wishlistHandler.MoveToCart)

	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/session", authHandler.Session)
	api.Get("/account", authHandler.Account)

	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC)
	checkoutGroup := api.Group("/checkout")
	checkoutGroup.Get("/summary", checkoutHandler.Summary)
	checkoutGroup.Get("/prefill", checkoutHandler.Prefill)
	checkoutGroup.Post("/orders", checkoutHandler.PlaceOrder)
	checkoutGroup.Get("/quote.pdf", checkoutHandler.QuotePDF)
}
