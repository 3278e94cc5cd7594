package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ConfigHandler serves configuration passthroughs the browser client
// needs at runtime.
type ConfigHandler struct {
	googleMapsAPIKey string
}

func NewConfigHandler(googleMapsAPIKey string) *ConfigHandler {
	return &ConfigHandler{googleMapsAPIKey: googleMapsAPIKey}
}

// GoogleMapsKey echoes the server-held maps key verbatim for the map
// view on the client.
func (h *ConfigHandler) GoogleMapsKey(c *gin.Context) {
	c.String(http.StatusOK, h.googleMapsAPIKey)
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
