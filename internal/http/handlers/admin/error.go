package admin

import (
	"errors"
	"strconv"

	"github.com/sochitour-next/internal/http/response"
	"github.com/sochitour-next/internal/logger"
	"github.com/sochitour-next/internal/service"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps business errors onto the response envelope.
func respondServiceError(c *gin.Context, err error, notFoundMsg string) {
	var validation *service.ValidationError
	switch {
	case errors.As(err, &validation):
		response.BadRequest(c, validation.Msg)
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, "invalid credentials")
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, notFoundMsg)
	default:
		logger.Errorw("request_failed",
			"path", c.FullPath(),
			"method", c.Request.Method,
			"error", err,
		)
		response.Internal(c)
	}
}

// pathID parses the :id route parameter; ok is false after responding 400.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
