package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/starbuy/shop/internal/domain/errors"
)

// historyLimit caps per-user listings served to the mini-app.
const historyLimit = 10

// PathTelegramID parses the :telegramID path parameter.
func PathTelegramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("telegramID"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid telegram id"})
		return 0, false
	}
	return id, true
}

// WriteError maps domain errors onto HTTP statuses.
func WriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domainErrors.ErrInvalidInput),
		errors.Is(err, domainErrors.ErrInvalidAmount),
		errors.Is(err, domainErrors.ErrInvalidReference),
		errors.Is(err, domainErrors.ErrPackageUnavailable):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrInsufficientBalance),
		errors.Is(err, domainErrors.ErrInsufficientStars),
		errors.Is(err, domainErrors.ErrPremiumRequired):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, domainErrors.ErrAlreadyProcessed),
		errors.Is(err, domainErrors.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
