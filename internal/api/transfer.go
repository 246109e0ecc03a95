package api

import (
	"net/http" // HTTP status codes
	"time"     // Timestamps for logging

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library

	"finledger/internal/service" // Ledger services
)

// CreateTransferHandler posts a transfer: the transfer row and its two
// transaction legs commit atomically or not at all.
func CreateTransferHandler(transfers *service.TransferService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		var in service.TransferInput
		if err := bindJSON(c, &in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		tr, err := transfers.Create(userID, in)
		if err != nil {
			respondError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":     userID,
			"transfer_id": tr.ID,
			"acc_ori_id":  tr.AccOriID,
			"acc_dest_id": tr.AccDestID,
			"amount":      tr.Amount.StringFixed(2),
			"timestamp":   time.Now().Format(time.RFC3339),
		}).Info("Transfer posted")
		invalidateTransferCaches(rdb, transfers, userID, tr)
		c.JSON(http.StatusCreated, tr)
	}
}

// ListTransfersHandler returns the caller's transfers
func ListTransfersHandler(transfers *service.TransferService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		list, err := transfers.List(userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetTransferHandler returns one transfer after the ownership check
func GetTransferHandler(transfers *service.TransferService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}
		tr, err := transfers.GetByID(userID, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, tr)
	}
}

// UpdateTransferHandler replaces a transfer and both of its legs atomically
func UpdateTransferHandler(transfers *service.TransferService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}
		var in service.TransferInput
		if err := bindJSON(c, &in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// The pre-image identifies the account the legs credited before a
		// retarget; lookup failures surface from Update itself.
		prev, _ := transfers.GetByID(userID, id)
		tr, err := transfers.Update(userID, id, in)
		if err != nil {
			respondError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":     userID,
			"transfer_id": tr.ID,
			"amount":      tr.Amount.StringFixed(2),
		}).Info("Transfer replaced")
		invalidateTransferCaches(rdb, transfers, userID, tr)
		if prev != nil && prev.AccDestID != tr.AccDestID {
			invalidateDestinationCache(rdb, transfers, userID, prev.AccDestID)
		}
		c.JSON(http.StatusOK, tr)
	}
}

// DeleteTransferHandler removes a transfer and cascades both legs
func DeleteTransferHandler(transfers *service.TransferService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}
		tr, err := transfers.Delete(userID, id)
		if err != nil {
			respondError(c, err)
			return
		}
		invalidateTransferCaches(rdb, transfers, userID, tr)
		c.Status(http.StatusNoContent)
	}
}
