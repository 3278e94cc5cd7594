package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buildtrack-dev/buildtrack/internal/service"
	"github.com/buildtrack-dev/buildtrack/pkg/response"
)

type StatHandler struct {
	statService service.StatService
}

func NewStatHandler(statService service.StatService) *StatHandler {
	return &StatHandler{statService: statService}
}

func (h *StatHandler) Get(c *gin.Context) {
	stats, err := h.statService.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
