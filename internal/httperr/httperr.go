package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Write(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}

// Respond maps a use case error onto the HTTP surface. Validation
// errors carry per-field detail, not-found and authorization errors a
// single message. Anything else is logged with full detail and hidden
// behind a generic message.
func Respond(c *gin.Context, log zerolog.Logger, err error) {
	var ve ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "validation failed",
			"errors":  ve.Fields,
		})
		return
	}

	var nf NotFoundError
	if errors.As(err, &nf) {
		NotFound(c, nf.Error())
		return
	}

	var ae AuthorizationError
	if errors.As(err, &ae) {
		Forbidden(c, ae.Error())
		return
	}

	log.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.FullPath()).
		Msg("unexpected error")
	Internal(c, "internal server error")
}
