package main

import (
	"context" // Context for the Redis ping
	"log"     // Startup logging

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library

	"finledger/internal/api"        // HTTP handlers
	"finledger/internal/config"     // Configuration
	"finledger/internal/middleware" // JWT middleware
	"finledger/internal/service"    // Ledger services
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database. TranslateError turns driver constraint
	// violations into gorm's portable errors so the services can map them.
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup Redis client; an empty address disables list caching
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
	} else {
		logrus.Warn("REDIS_ADDR not set, list caching disabled")
	}

	// Ledger services, each parameterized only by the store handle
	users := service.NewUserService(db)
	accounts := service.NewAccountService(db)
	transactions := service.NewTransactionService(db)
	transfers := service.NewTransferService(db, transactions)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default()

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes (open)
	r.POST("/auth/signup", api.SignupHandler(users))
	r.POST("/auth/signin", api.SigninHandler(users, cfg.JWTSecret))

	// Ledger routes (protected by JWT)
	v1 := r.Group("/v1")
	v1.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	v1.GET("/users", api.ListUsersHandler(users))
	v1.POST("/users", api.CreateUserHandler(users))

	v1.POST("/accounts", api.CreateAccountHandler(accounts, rdb))
	v1.GET("/accounts", api.ListAccountsHandler(accounts, rdb))
	v1.GET("/accounts/:id", api.GetAccountHandler(accounts))
	v1.PUT("/accounts/:id", api.UpdateAccountHandler(accounts, rdb))
	v1.DELETE("/accounts/:id", api.DeleteAccountHandler(accounts, rdb))

	v1.POST("/transactions", api.CreateTransactionHandler(transactions, rdb))
	v1.GET("/transactions", api.ListTransactionsHandler(transactions, rdb))
	v1.GET("/transactions/:id", api.GetTransactionHandler(transactions))
	v1.PUT("/transactions/:id", api.UpdateTransactionHandler(transactions, rdb))
	v1.DELETE("/transactions/:id", api.DeleteTransactionHandler(transactions, rdb))

	v1.POST("/transfers", api.CreateTransferHandler(transfers, rdb))
	v1.GET("/transfers", api.ListTransfersHandler(transfers))
	v1.GET("/transfers/:id", api.GetTransferHandler(transfers))
	v1.PUT("/transfers/:id", api.UpdateTransferHandler(transfers, rdb))
	v1.DELETE("/transfers/:id", api.DeleteTransferHandler(transfers, rdb))

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server
}
