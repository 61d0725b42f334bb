package public

import (
	"errors"

	"github.com/sochitour-next/internal/http/response"
	"github.com/sochitour-next/internal/logger"
	"github.com/sochitour-next/internal/service"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps business errors onto the response envelope.
// notFoundMsg customizes the 404 message per route; unknown errors become a
// generic 500 so store internals never leak.
func respondServiceError(c *gin.Context, err error, notFoundMsg string) {
	var validation *service.ValidationError
	switch {
	case errors.As(err, &validation):
		response.BadRequest(c, validation.Msg)
	case errors.Is(err, service.ErrEmailExists):
		response.BadRequest(c, "email already exists")
	case errors.Is(err, service.ErrEmptyCart):
		response.BadRequest(c, "cart is empty")
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
