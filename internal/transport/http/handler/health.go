package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"gestor-xarxa/internal/core/database"
	resp "gestor-xarxa/internal/transport/http/response"
)

type HealthHandler struct{ db *gorm.DB }

func NewHealthHandler(db *gorm.DB) *HealthHandler { return &HealthHandler{db: db} }

// Liveness answers without touching the store.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.String(http.StatusOK, resp.MsgLiveness)
}

func (h *HealthHandler) Health(c *gin.Context) {
	if err := database.Ping(h.db); err != nil {
		c.JSON(http.StatusServiceUnavailable, resp.Error(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": 1})
}
