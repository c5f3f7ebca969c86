package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codigofacilito/blog-backend/internal/apierrors"
	"github.com/codigofacilito/blog-backend/internal/logger"
	"github.com/codigofacilito/blog-backend/internal/model"
)

// handleError maps a service error to an HTTP response. APIError messages
// are safe to return verbatim; anything else is logged and surfaced as a
// generic internal error.
func handleError(c *gin.Context, log *logger.Logger, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPCode == http.StatusInternalServerError {
			log.Error("request failed",
				"path", c.Request.URL.Path,
				"error", err.Error())
		}
		c.JSON(apiErr.HTTPCode, gin.H{"error": apiErr.Message})
		return
	}

	if errors.Is(err, model.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	log.Error("request failed",
		"path", c.Request.URL.Path,
		"error", err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
