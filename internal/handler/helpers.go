package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/buildtrack-dev/buildtrack/pkg/apperror"
	"github.com/buildtrack-dev/buildtrack/pkg/response"
)

// idParam parses the :id path segment. On failure it writes the 400
// itself and reports false.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "Invalid id", err))
		return 0, false
	}
	return uint(id), true
}
