package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Cache TTL

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client

	"finledger/internal/domain"  // Domain models
	"finledger/internal/service" // Ledger services
	"finledger/internal/utils"   // Cache helpers
)

// CreateTransactionHandler inserts a ledger entry on one of the caller's
// accounts. The stored amount sign follows the type, not the input.
func CreateTransactionHandler(transactions *service.TransactionService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		var in service.TransactionInput
		if err := bindJSON(c, &in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		t, err := transactions.Create(userID, in)
		if err != nil {
			respondError(c, err)
			return
		}
		invalidateTransactionCache(rdb, userID)
		c.JSON(http.StatusCreated, t)
	}
}

// ListTransactionsHandler returns the caller's transactions across all
// accounts, served from cache when a fresh entry exists.
func ListTransactionsHandler(transactions *service.TransactionService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		ctx := context.Background()
		var list []domain.Transaction
		if rdb != nil {
			if found, err := utils.GetCache(ctx, rdb, transactionsCacheKey(userID), &list); err == nil && found {
				c.JSON(http.StatusOK, list)
				return
			}
		}
		list, err := transactions.List(userID)
		if err != nil {
			respondError(c, err)
			return
		}
		if rdb != nil {
			_ = utils.SetCache(ctx, rdb, transactionsCacheKey(userID), list, 60*time.Second)
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetTransactionHandler returns one transaction after the transitive
// ownership check through its account.
func GetTransactionHandler(transactions *service.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}
		t, err := transactions.GetByID(userID, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

// UpdateTransactionHandler mutates the allowed fields, re-normalizing the
// amount sign.
func UpdateTransactionHandler(transactions *service.TransactionService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}
		var in service.TransactionInput
		if err := bindJSON(c, &in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		t, err := transactions.Update(userID, id, in)
		if err != nil {
			respondError(c, err)
			return
		}
		invalidateTransactionCache(rdb, userID)
		c.JSON(http.StatusOK, t)
	}
}

// DeleteTransactionHandler removes one transaction
func DeleteTransactionHandler(transactions *service.TransactionService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := transactions.Delete(userID, id); err != nil {
			respondError(c, err)
			return
		}
		invalidateTransactionCache(rdb, userID)
		c.Status(http.StatusNoContent)
	}
}
