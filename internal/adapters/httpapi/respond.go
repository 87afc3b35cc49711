package httpapi

import (
	"errors"
	"net/http"

	"github.com/Mikielai/crudblog/internal/core/apperr"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps the error taxonomy onto HTTP statuses. Dependency
// failures are logged with detail and surfaced as a generic retry message;
// everything else carries its own message.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindUnauthenticated:
		c.JSON(http.StatusUnauthorized, gin.H{"error": errMessage(err)})
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": errMessage(err)})
	case apperr.KindForbidden:
		c.JSON(http.StatusForbidden, gin.H{"error": errMessage(err)})
	case apperr.KindInvalid:
		c.JSON(http.StatusBadRequest, gin.H{"error": errMessage(err)})
	default:
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again later"})
	}
}

func errMessage(err error) string {
	var e *apperr.Error
	if errors.As(err, &e) {
		return e.Message()
	}
	return err.Error()
}
