package main

import (
	"context"
	"errors"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"gestor-xarxa/internal/core/auth"
	"gestor-xarxa/internal/core/config"
	"gestor-xarxa/internal/core/database"
	"gestor-xarxa/internal/core/logger"
	"gestor-xarxa/internal/core/server"
	"gestor-xarxa/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		stdlog.Fatalf("config: %v", err)
	}

	log, cleanup := logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, logger.FileRotate{
		Enable:     cfg.Log.File.Enable,
		Filename:   cfg.Log.File.Filename,
		MaxSizeMB:  cfg.Log.File.MaxSizeMB,
		MaxBackups: cfg.Log.File.MaxBackups,
		MaxAgeDays: cfg.Log.File.MaxAgeDays,
		Compress:   cfg.Log.File.Compress,
	})
	defer cleanup()
	defer logger.RedirectStdLog(log, zapcore.InfoLevel)()
	if cfg.App.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := mustOpenDB(cfg, log)
	log.Info("database connected",
		zap.String("driver", cfg.DB.Driver),
		zap.Bool("foreign_keys", cfg.DB.ForeignKeys),
	)
	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	opts := router.Options{
		RPS:          cfg.Limits.RPS,
		Burst:        cfg.Limits.Burst,
		Concurrency:  cfg.Limits.Concurrency,
		MaxBodyBytes: cfg.Limits.MaxBodyBytes,
		Timeout:      time.Duration(cfg.Limits.TimeoutSec) * time.Second,
	}
	if cfg.Auth.Secret != "" {
		opts.JWT = &auth.JWTer{
			Secret: []byte(cfg.Auth.Secret),
			Issuer: cfg.Auth.Issuer,
			TTL:    time.Duration(cfg.Auth.TokenTTL) * time.Minute,
		}
		log.Info("bearer-token auth enabled on /api")
	}

	errLog, _ := logger.ToStdLogger(log, zapcore.ErrorLevel)
	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, router.NewAPIEngine(log, db, opts),
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
		errLog,
	)
	servers := []*http.Server{srv}

	if cfg.App.Admin.Port > 0 {
		adminAddr := server.Addr(cfg.App.Admin.Host, cfg.App.Admin.Port)
		servers = append(servers, server.BuildServer(
			adminAddr, router.NewAdminEngine(log, db),
			5*time.Second, 10*time.Second, 60*time.Second, errLog,
		))
	}

	for _, s := range servers {
		go func(s *http.Server) {
			log.Info("http starting", zap.String("addr", s.Addr))
			if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal("http start FAILED", zap.String("addr", s.Addr), zap.Error(err))
			}
		}(s)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, s := range servers {
		_ = s.Shutdown(ctx)
	}
	if err := database.Close(db); err != nil {
		log.Error("database close", zap.Error(err))
	}
	log.Info("stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
		Writer:             stdlog.New(logger.ToWriter(l.Named("gorm"), zapcore.WarnLevel), "", 0),
		ForeignKeys:        cfg.DB.ForeignKeys,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
