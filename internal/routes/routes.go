// Package routes defines the API routing configuration.
// It wires repositories, services, and handlers together and applies
// middleware where the operator tier requires it.
package routes

import (
	"time"

	"solsight/internal/config"
	"solsight/internal/handlers"
	"solsight/internal/middleware"
	"solsight/internal/repositories"
	"solsight/internal/services/auth"
	"solsight/internal/services/intel"
	"solsight/internal/services/market"
	"solsight/internal/services/solana"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App) {
	// Repositories
	scanRepo := repositories.NewScanRepository(repositories.DB)

	// Upstream clients
	chainClient := solana.NewClient(config.GetEnv("SOLANA_RPC_URL", "https://api.mainnet-beta.solana.com"))
	marketService := market.NewService(market.Config{
		PriceBaseURL: config.GetEnv("PRICE_FEED_URL", "https://hermes.pyth.network"),
		QuoteBaseURL: config.GetEnv("QUOTE_API_URL", "https://quote-api.jup.ag"),
		TokenBaseURL: config.GetEnv("TOKEN_API_URL", "https://tokens.jup.ag"),
	}, repositories.CacheService)

	// Services
	intelService := intel.NewService(chainClient, scanRepo)
	authService := auth.NewService(
		config.GetEnv("OPERATOR_KEY_HASH", ""),
		config.GetEnv("JWT_SECRET", "solsight"),
		config.GetDurationEnv("TOKEN_TTL", time.Hour),
	)

	// Handlers
	walletHandler := handlers.NewWalletHandler(intelService)
	marketHandler := handlers.NewMarketHandler(marketService)
	historyHandler := handlers.NewHistoryHandler(scanRepo)
	authHandler := handlers.NewAuthHandler(authService)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	// Root welcome route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to SolSight API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	app.Get("/health", handlers.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Public endpoints
	api.Post("/auth/token", authHandler.IssueToken)

	api.Get("/wallet/:address", walletHandler.GetWallet)
	api.Get("/wallet/:address/activity", walletHandler.GetActivity)
	api.Get("/wallet/:address/risk", walletHandler.GetRisk)
	api.Get("/wallet/:address/anomalies", walletHandler.GetAnomalies)
	api.Get("/wallet/:address/analyze", walletHandler.Analyze)

	api.Get("/market/price", marketHandler.ListPriceSymbols)
	api.Get("/market/price/:symbol", marketHandler.GetPrice)
	api.Get("/market/quote", marketHandler.GetQuote)
	api.Get("/market/token/:mint", marketHandler.GetToken)

	// Operator tier
	scans := api.Group("/scans", authMiddleware.Handler)
	scans.Get("/", historyHandler.ListScans)
	scans.Get("/:id", historyHandler.GetScan)

	admin := api.Group("/admin", authMiddleware.Handler)
	admin.Get("/cache/stats", handlers.CacheStats)
	admin.Post("/cache/flush", handlers.CacheFlush)
}
