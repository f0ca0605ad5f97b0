package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/cache"
	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/config"
	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/db"
	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/leads"
	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/middleware"
	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/partners"
	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/reporting"
	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/validation"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("mongo connected")
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		logger.Error("index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		cacheStore = redisCache
	}

	val := validation.New()

	leadRepo := leads.NewRepository(cols.Leads)
	leadService := leads.NewService(leadRepo, cfg.Timezone)
	leadHandler := leads.NewHandler(leadService, val, logger)

	partnerRepo := partners.NewRepository(cols.Partners)
	partnerService := partners.NewService(partnerRepo, cfg.Timezone)
	partnerHandler := partners.NewHandler(partnerService, val, logger)

	reportTTL := time.Duration(cfg.ReportCacheTTLSec) * time.Second
	reportService := reporting.NewService(leadRepo, partnerService, cacheStore, reportTTL)
	reportHandler := reporting.NewHandler(reportService, cfg.Timezone, logger)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS(cfg.FrontendOrigin))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	leadLimiter := middleware.NewRateLimiter(cfg.RateLimitLeads, time.Duration(cfg.RateLimitWindowSec)*time.Second)

	r.Route("/api", func(api chi.Router) {
		api.With(leadLimiter.Middleware).Post("/leads", leadHandler.Create)
		api.Get("/leads", leadHandler.List)
		api.Get("/leads/bda", leadHandler.ListByBDA)
		api.Get("/leads/{id}", leadHandler.GetByID)
		api.Put("/leads/{id}", leadHandler.Update)

		api.Get("/partners", partnerHandler.List)
		api.Post("/partners", partnerHandler.Create)

		api.Route("/reports", func(reports chi.Router) {
			reports.Get("/timeseries", reportHandler.Timeseries)
			reports.Get("/timeseries.csv", reportHandler.TimeseriesCSV)
			reports.Get("/top", reportHandler.Top)
			reports.Get("/overview", reportHandler.Overview)
			reports.Get("/payments", reportHandler.Payments)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
