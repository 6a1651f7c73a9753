package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/clothingstore/storefront-gateway/docs"
	"github.com/clothingstore/storefront-gateway/internal/api/handler"
	"github.com/clothingstore/storefront-gateway/internal/api/middleware"
	"github.com/clothingstore/storefront-gateway/internal/core/ports"
)

// Dependencies carries everything the router needs; main wires them up.
type Dependencies struct {
	Catalog  ports.CatalogService
	Carts    ports.CartService
	Accounts ports.AccountService
	Gateway  ports.CommerceGateway
	Resolver ports.AuthzService
	Redis    *redis.Client
	Backend  handler.BackendPinger
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))
	e.Use(middleware.Session(deps.Resolver))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Gateway, deps.Resolver)
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)
	cartHandler := handler.NewCartHandler(deps.Carts)
	adminHandler := handler.NewAdminHandler(deps.Gateway)
	accountHandler := handler.NewAccountHandler(deps.Accounts)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Redis, deps.Backend)

	// --- Probes and operational endpoints (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth and session ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/logout", authHandler.Logout)
	e.GET("/api/session", authHandler.Session)

	// --- Storefront reads (never fail, fallback-backed) ---
	storefront := e.Group("/api/storefront")
	storefront.GET("/home", catalogHandler.Home)
	storefront.GET("/products", catalogHandler.Products)
	storefront.GET("/products/:id", catalogHandler.Product)
	storefront.GET("/categories", catalogHandler.Categories)

	// --- Cart (anonymous, cookie-scoped session) ---
	cart := e.Group("/api/cart", middleware.CartSession())
	cart.GET("", cartHandler.Get)
	cart.DELETE("", cartHandler.Clear)
	cart.POST("/items", cartHandler.AddItem)
	cart.PUT("/items/:id", cartHandler.UpdateQuantity)
	cart.DELETE("/items/:id", cartHandler.RemoveItem)

	// --- Checkout and account (authenticated) ---
	e.POST("/api/checkout", accountHandler.Checkout, middleware.CartSession(), middleware.Authenticated())
	account := e.Group("/api/account", middleware.Authenticated())
	account.GET("/orders", accountHandler.Orders)
	account.GET("/orders/:id", accountHandler.Order)
	account.GET("/profile", accountHandler.Profile)
	account.PUT("/profile", accountHandler.UpdateProfile)
	account.POST("/addresses", accountHandler.AddAddress)

	// --- Admin product writes ---
	admin := e.Group("/api/admin", middleware.AdminOnly())
	admin.POST("/products", adminHandler.CreateProduct)
	admin.PUT("/products/:id", adminHandler.UpdateProduct)
	admin.DELETE("/products/:id", adminHandler.DeleteProduct)

	return e
}
