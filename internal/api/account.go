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

// CreateAccountHandler inserts an account owned by the caller
func CreateAccountHandler(accounts *service.AccountService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		var in service.AccountInput
		if err := bindJSON(c, &in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		acc, err := accounts.Create(userID, in)
		if err != nil {
			respondError(c, err)
			return
		}
		invalidateAccountCache(rdb, userID)
		c.JSON(http.StatusCreated, acc)
	}
}

// ListAccountsHandler returns the caller's accounts, served from cache when
// a fresh entry exists.
func ListAccountsHandler(accounts *service.AccountService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		ctx := context.Background()
		var list []domain.Account
		if rdb != nil {
			if found, err := utils.GetCache(ctx, rdb, accountsCacheKey(userID), &list); err == nil && found {
				c.JSON(http.StatusOK, list)
				return
			}
		}
		list, err := accounts.List(userID)
		if err != nil {
			respondError(c, err)
			return
		}
		if rdb != nil {
			_ = utils.SetCache(ctx, rdb, accountsCacheKey(userID), list, 60*time.Second)
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetAccountHandler returns one account after the ownership check
func GetAccountHandler(accounts *service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}
		acc, err := accounts.GetByID(userID, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, acc)
	}
}

// UpdateAccountHandler renames an account
func UpdateAccountHandler(accounts *service.AccountService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}
		var in service.AccountInput
		if err := bindJSON(c, &in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		acc, err := accounts.Update(userID, id, in)
		if err != nil {
			respondError(c, err)
			return
		}
		invalidateAccountCache(rdb, userID)
		c.JSON(http.StatusOK, acc)
	}
}

// DeleteAccountHandler removes an account with no associated transactions
func DeleteAccountHandler(accounts *service.AccountService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := accounts.Delete(userID, id); err != nil {
			respondError(c, err)
			return
		}
		invalidateAccountCache(rdb, userID)
		c.Status(http.StatusNoContent)
	}
}
