package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpadp "esep-backend/internal/adapter/http"
	mw "esep-backend/internal/adapter/middleware"
	"esep-backend/internal/adapter/repository/mysql"
	"esep-backend/internal/config"
	"esep-backend/internal/infrastructure/cache"
	"esep-backend/internal/infrastructure/db"
	"esep-backend/internal/infrastructure/logger"
	"esep-backend/internal/infrastructure/metrics"
	"esep-backend/internal/usecase/auth"
	"esep-backend/internal/usecase/catalog"
	"esep-backend/internal/usecase/content"
	ucLedger "esep-backend/internal/usecase/ledger"
	"esep-backend/internal/usecase/permission"
	ucRegistration "esep-backend/internal/usecase/registration"
	ucReport "esep-backend/internal/usecase/report"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("config")
	}
	loc, _ := cfg.Location()

	ctx := context.Background()
	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.WithError(err).Fatal("mysql")
	}
	if err := db.Migrate(ctx, gdb); err != nil {
		log.WithError(err).Fatal("migrate")
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Fatal("redis")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	tx := mysql.NewGormUoW(gdb)
	regRepo := mysql.NewRegistrationRepository(gdb)
	users := mysql.NewAdminUserRepository(gdb)

	regUC := ucRegistration.NewUsecase(regRepo, tx,
		ucRegistration.WithLogger(log),
		ucRegistration.WithMetrics(m),
		ucRegistration.WithAlertDays(cfg.ExpiryAlertDays),
		ucRegistration.WithDefaultExpiryDays(cfg.DefaultExpiryDays),
	)
	ledgerUC := ucLedger.NewUsecase(regRepo, tx, ucLedger.WithLogger(log), ucLedger.WithMetrics(m))
	gate := permission.NewUsecase(users, mysql.NewPermissionRepository(gdb), tx, permission.WithLogger(log))
	authUC := auth.NewUsecase(users, gate, cache.NewTokenRevocations(rdb), cfg.JWTSecret, cfg.JWTTTL(), auth.WithLogger(log))
	catalogUC := catalog.NewUsecase(mysql.NewCategoryRepository(gdb), mysql.NewPanchayathRepository(gdb), tx, log)
	contentUC := content.NewUsecase(mysql.NewContentRepository(gdb), log)
	reportUC := ucReport.NewUsecase(regRepo, loc, log)

	if _, err := authUC.EnsureBootstrapAdmin(ctx, cfg.BootstrapAdminUsername, cfg.BootstrapAdminPassword); err != nil {
		log.WithError(err).Fatal("bootstrap admin")
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		log.WithError(err).Fatal("mysql pool")
	}
	health := httpadp.NewHandler(
		httpadp.HealthCheck{Name: "mysql", Check: sqlDB.PingContext},
		httpadp.HealthCheck{Name: "redis", Check: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
	)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Recover(), mw.RequestLogger(log), mw.Metrics(m))

	httpadp.Register(e, httpadp.Handlers{
		Health:        health,
		Public:        httpadp.NewPublicHandler(regUC, catalogUC, contentUC),
		Auth:          httpadp.NewAuthHandler(authUC),
		Registrations: httpadp.NewRegistrationHandler(regUC, ledgerUC, loc),
		Catalog:       httpadp.NewCatalogHandler(catalogUC),
		Reports:       httpadp.NewReportHandler(reportUC),
		Permissions:   httpadp.NewPermissionHandler(gate),
		Content:       httpadp.NewContentHandler(contentUC),
	}, httpadp.RouteDeps{
		Session:     mw.RequireSession(authUC),
		Idempotency: mw.Idempotency(rdb, cfg.IdempotencyTTL(), log),
		Metrics:     m.Handler(),
	})

	go func() {
		addr := ":" + cfg.AppPort
		log.WithField("addr", addr).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown")
	}
	_ = rdb.Close()
	_ = sqlDB.Close()
	log.Info("stopped")
}
