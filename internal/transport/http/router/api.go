package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"gestor-xarxa/internal/core/auth"
	"gestor-xarxa/internal/core/server"
	"gestor-xarxa/internal/repo"
	"gestor-xarxa/internal/transport/http/handler"
	mdw "gestor-xarxa/internal/transport/http/middleware"
)

// Options tunes the request guards. Zero values disable the matching guard.
type Options struct {
	RPS          float64
	Burst        int
	Concurrency  int64
	MaxBodyBytes int64
	Timeout      time.Duration
	// JWT, when non-nil, protects every /api route with an admin token.
	JWT *auth.JWTer
}

func NewAPIEngine(l *zap.Logger, db *gorm.DB, o Options) *gin.Engine {
	r := server.NewRouter(l)

	r.Use(mdw.RateLimit(rate.Limit(o.RPS), o.Burst))
	if o.Concurrency > 0 {
		r.Use(mdw.ConcurrencyLimit(o.Concurrency))
	}
	if o.MaxBodyBytes > 0 {
		r.Use(mdw.MaxBodyBytes(o.MaxBodyBytes))
	}
	r.Use(mdw.Timeout(o.Timeout), mdw.Metrics())

	health := handler.NewHealthHandler(db)
	r.GET("/", health.Liveness)
	r.GET("/health", health.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	if o.JWT != nil {
		api.Use(mdw.AuthJWT(o.JWT, auth.RoleAdmin))
	}

	var reg Registry
	reg.Register(
		handler.NewUserHandler(repo.NewUserRepo(db), l),
		handler.NewEquipmentHandler(repo.NewEquipmentRepo(db), l),
		handler.NewPrinterHandler(repo.NewPrinterRepo(db), l),
		handler.NewResourceHandler(repo.NewResourceRepo(db), l),
		handler.NewAssignmentHandler(repo.NewAssignmentRepo(db), l),
	)
	reg.MountAll(api)

	return r
}
