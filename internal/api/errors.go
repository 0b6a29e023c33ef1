package api

import (
	"net/http"

	"github.com/GeoTsinganos/booking-system-api/internal/apperr"
	"github.com/GeoTsinganos/booking-system-api/internal/logger"

	"github.com/gin-gonic/gin"
)

// RespondError maps a service error to its HTTP status. Untagged errors
// are treated as internal and their detail is kept out of the response.
func RespondError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperr.KindConflict:
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperr.KindPermission:
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("internal error", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
