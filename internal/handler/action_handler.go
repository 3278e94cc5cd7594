package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buildtrack-dev/buildtrack/internal/dto"
	"github.com/buildtrack-dev/buildtrack/internal/service"
	"github.com/buildtrack-dev/buildtrack/pkg/response"
)

type ActionHandler struct {
	actionService service.ActionService
}

func NewActionHandler(actionService service.ActionService) *ActionHandler {
	return &ActionHandler{actionService: actionService}
}

// List serves GET /api/actions with the composable query filters.
func (h *ActionHandler) List(c *gin.Context) {
	var filter dto.ActionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ValidationError(c, err)
		return
	}

	actions, err := h.actionService.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, actions)
}

func (h *ActionHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	action, err := h.actionService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, action)
}

func (h *ActionHandler) Create(c *gin.Context) {
	var req dto.CreateActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	action, err := h.actionService.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, action)
}

func (h *ActionHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	action, err := h.actionService.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, action)
}

func (h *ActionHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.actionService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
