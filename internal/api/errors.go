package api

import (
	"errors"   // Error unwrapping
	"io"       // EOF detection on empty bodies
	"net/http" // HTTP status codes
	"strconv"  // Path parameter parsing

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library

	"finledger/internal/service" // Ledger services
)

// respondError translates a service error into an HTTP response. Validation
// and conflict failures map to 400, ownership failures to 403 and missing
// resources to 404. Anything unclassified is logged and surfaced as a
// generic 500.
func respondError(c *gin.Context, err error) {
	var (
		validation *service.ValidationError
		conflict   *service.ConflictError
		forbidden  *service.ForbiddenError
		notFound   *service.NotFoundError
	)
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
	case errors.As(err, &conflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": conflict.Message})
	case errors.As(err, &forbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": forbidden.Message})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Message})
	default:
		logrus.WithField("error", err.Error()).Error("Unexpected failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// callerID extracts the authenticated user id stored by the JWT middleware
func callerID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return v.(uint), true
}

// bindJSON decodes the request body into obj. An empty body is not an
// error here: the services report which required field is missing.
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// pathID parses the numeric :id path parameter
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return 0, false
	}
	return uint(id), true
}
