package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/buildtrack-dev/buildtrack/pkg/apperror"
	"github.com/buildtrack-dev/buildtrack/pkg/validator"
)

// ErrorBody is the JSON shape of every non-2xx response.
type ErrorBody struct {
	Message string                 `json:"message"`
	Errors  []validator.FieldError `json:"errors,omitempty"`
}

// Error maps err to an HTTP status and writes the standard error body.
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors, never leak them to the client
	if code == http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Msg("internal error")
		c.JSON(code, ErrorBody{Message: "Internal server error"})
		return
	}

	c.JSON(code, ErrorBody{Message: err.Error()})
}

// ValidationError writes a 400 with per-field detail from a binding failure.
func ValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorBody{
		Message: "Validation failed",
		Errors:  validator.FormatValidationErrors(err),
	})
}
