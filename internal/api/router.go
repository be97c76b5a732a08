package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/ecofinds/marketplace/internal/api/handler"
	"github.com/ecofinds/marketplace/internal/api/middleware"
	"github.com/ecofinds/marketplace/internal/core/service"
	store "github.com/ecofinds/marketplace/internal/infrastructure/store/badger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(st *store.Store, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Repositories ---
	users := store.NewUserRepository(st)
	products := store.NewProductRepository(st)
	carts := store.NewCartRepository(st)
	purchases := store.NewPurchaseRepository(st)
	sessions := store.NewSessionRepository(st)

	// --- Services ---
	authService := service.NewAuthService(users, sessions, log)
	sessionService := service.NewSessionService(sessions, users)
	catalogService := service.NewCatalogService(users, products, log)
	listingService := service.NewListingService(products, log)
	cartService := service.NewCartService(carts, products, log)
	checkoutService := service.NewCheckoutService(carts, purchases, products, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(sessionService, authService)
	productHandler := handler.NewProductHandler(catalogService, listingService)
	cartHandler := handler.NewCartHandler(cartService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)

	// --- Auth routes (no session required) ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Health probes and metrics ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(st).Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Session-gated API ---
	v1 := e.Group("/v1", middleware.Session(sessionService))

	v1.GET("/me", profileHandler.Me)
	v1.PUT("/me", profileHandler.Update)

	v1.GET("/products", productHandler.Search)
	v1.GET("/products/:id", productHandler.Get)
	v1.POST("/products", productHandler.Create)
	v1.PUT("/products/:id", productHandler.Update)
	v1.DELETE("/products/:id", productHandler.Delete)
	v1.GET("/listings", productHandler.Mine)

	v1.GET("/cart", cartHandler.View)
	v1.POST("/cart/items", cartHandler.AddItem)
	v1.PATCH("/cart/items/:product_id", cartHandler.ChangeQty)
	v1.DELETE("/cart/items/:product_id", cartHandler.RemoveItem)

	v1.POST("/checkout", checkoutHandler.Checkout)
	v1.GET("/purchases", checkoutHandler.History)

	return e
}
