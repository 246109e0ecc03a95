package api

import (
	"context" // Context for Redis operations
	"strconv" // Key building

	"github.com/redis/go-redis/v9" // Redis client

	"finledger/internal/domain"  // Domain models
	"finledger/internal/service" // Ledger services
	"finledger/internal/utils"   // Cache helpers
)

// Cache keys are per user so a mutation only evicts the caller's entries

func accountsCacheKey(userID uint) string {
	return "accounts:user:" + strconv.Itoa(int(userID))
}

func transactionsCacheKey(userID uint) string {
	return "transactions:user:" + strconv.Itoa(int(userID))
}

// invalidateAccountCache drops the caller's cached account list. No-op
// without a configured Redis client.
func invalidateAccountCache(rdb *redis.Client, userID uint) {
	if rdb == nil {
		return
	}
	_ = utils.DeleteCache(context.Background(), rdb, accountsCacheKey(userID))
}

// invalidateTransactionCache drops the caller's cached transaction list
func invalidateTransactionCache(rdb *redis.Client, userID uint) {
	if rdb == nil {
		return
	}
	_ = utils.DeleteCache(context.Background(), rdb, transactionsCacheKey(userID))
}

// invalidateTransferCaches drops the transaction caches of every user the
// transfer touched: the caller always, and the destination account's owner
// when that account belongs to someone else.
func invalidateTransferCaches(rdb *redis.Client, transfers *service.TransferService, userID uint, tr *domain.Transfer) {
	invalidateTransactionCache(rdb, userID)
	invalidateDestinationCache(rdb, transfers, userID, tr.AccDestID)
}

// invalidateDestinationCache drops the transaction cache of the account's
// owner when the account belongs to someone other than the caller
func invalidateDestinationCache(rdb *redis.Client, transfers *service.TransferService, userID, accDestID uint) {
	if rdb == nil {
		return
	}
	owner, err := transfers.AccountOwner(accDestID)
	if err != nil || owner == userID {
		return
	}
	invalidateTransactionCache(rdb, owner)
}
