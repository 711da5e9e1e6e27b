package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gestor-xarxa/internal/core/server"
	"gestor-xarxa/internal/transport/http/handler"
)

// NewAdminEngine serves the ops endpoints on a separate listener so they can
// be kept off the public interface.
func NewAdminEngine(l *zap.Logger, db *gorm.DB) *gin.Engine {
	r := server.NewRouter(l)
	health := handler.NewHealthHandler(db)
	r.GET("/health", health.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}
