// Package routes wires repositories, services and handlers onto the fiber app.
package routes

import (
	"kora/internal/config"
	"kora/internal/handlers"
	"kora/internal/middleware"
	"kora/internal/repositories"
	"kora/internal/services/auth"
	"kora/internal/services/gateway"
	"kora/internal/services/ledger"
	"kora/internal/services/reference"
	"kora/internal/services/user"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes builds the dependency graph and registers all API routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	ledgerRepo := repositories.NewLedgerRepository(db)
	userRepo := repositories.NewUserRepository(db)
	idemStore := repositories.NewRedisIdempotencyStore(repositories.RedisClient)

	protector := reference.NewProtector(config.GetEnv("REFERENCE_SECRET", "kora-reference-secret"))
	gatewayClient := gateway.NewStripeClient(gateway.Config{
		SecretKey:  config.GetEnv("STRIPE_SECRET_KEY", "sk_test_placeholder"),
		Currency:   config.GetEnv("GATEWAY_CURRENCY", "ngn"),
		SuccessURL: config.GetEnv("GATEWAY_SUCCESS_URL", ""),
		CancelURL:  config.GetEnv("GATEWAY_CANCEL_URL", ""),
	})

	ledgerService := ledger.NewService(ledgerRepo, userRepo, idemStore, gatewayClient, protector)
	userService := user.NewService(userRepo)
	authService := auth.NewService(userRepo)

	walletHandler := handlers.NewWalletHandler(ledgerService, ledgerRepo)
	userHandler := handlers.NewUserHandler(userService)
	authHandler := handlers.NewAuthHandler(authService)

	api := app.Group("/api")

	// Public endpoints
	api.Get("/health", handlers.HealthCheck)
	api.Post("/login", authHandler.Login)
	api.Post("/user/signup", userHandler.Register)

	// User management
	userGroup := api.Group("/user", middleware.Auth())
	userGroup.Get("/", userHandler.List)
	userGroup.Get("/:id", userHandler.Get)
	userGroup.Delete("/:id", userHandler.Delete)

	// Wallet operations
	wallet := api.Group("/wallet", middleware.Auth())
	wallet.Get("/", walletHandler.GetWallet)
	wallet.Post("/initiate-deposit", walletHandler.InitiateDeposit)
	wallet.Post("/verify-deposit", walletHandler.VerifyDeposit)
	wallet.Post("/transfer", walletHandler.Transfer)
	wallet.Get("/transactions/deposit", walletHandler.GetDepositTransactions)
	wallet.Get("/transactions/debit", walletHandler.GetDebitTransactions)
	wallet.Get("/transactions/credit", walletHandler.GetCreditTransactions)
}
