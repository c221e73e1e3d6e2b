package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/Tanmay000009/swe-fastfood/internal/app"
	"github.com/Tanmay000009/swe-fastfood/internal/auth"
	"github.com/Tanmay000009/swe-fastfood/internal/clock"
	"github.com/Tanmay000009/swe-fastfood/internal/config"
	"github.com/Tanmay000009/swe-fastfood/internal/events"
	"github.com/Tanmay000009/swe-fastfood/internal/storage/postgres"
	"github.com/Tanmay000009/swe-fastfood/internal/storage/rediscache"
	transporthttp "github.com/Tanmay000009/swe-fastfood/internal/transport/http"
	"github.com/Tanmay000009/swe-fastfood/migrations"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := log.Default()

	cfg, err := config.Load(logger)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(startupCtx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect to db: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(startupCtx); err != nil {
		log.Fatalf("db ping: %v", err)
	}
	if err := migrations.Apply(startupCtx, pool); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	orderRepo := postgres.NewOrderRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)

	var menuCache app.MenuCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(startupCtx).Err(); err != nil {
			log.Fatalf("redis ping: %v", err)
		}
		defer rdb.Close()
		menuCache = rediscache.NewMenuCache(rdb, logger, rediscache.WithTTL(cfg.MenuCacheTTL))
		logger.Printf("menu cache enabled via %s", cfg.RedisAddr)
	}

	var orderEvents app.OrderEvents
	if cfg.AMQPURL != "" {
		publisher, conn, err := events.Connect(cfg.AMQPURL, logger)
		if err != nil {
			log.Fatalf("connect to rabbitmq: %v", err)
		}
		defer conn.Close()
		orderEvents = publisher
		logger.Printf("order events enabled via %s exchange", events.ExchangeName)
	}

	clk := clock.NewSystem()
	catalogSvc := app.NewCatalogService(catalogRepo, menuCache, clk)
	customerSvc := app.NewCustomerService(customerRepo, clk)
	projector := app.NewProjector(catalogRepo, catalogRepo)
	orderSvc := app.NewOrderService(
		orderRepo,
		catalogRepo,
		customerRepo,
		projector,
		orderEvents,
		clk,
		app.WithCancellationWindow(cfg.CancellationWindow),
	)

	tokens := auth.NewTokens(cfg.JWTSecret, 0)

	mux := transporthttp.NewRouter(transporthttp.RouterDeps{
		Orders:    orderSvc,
		Catalog:   catalogSvc,
		Customers: customerSvc,
		Verifier:  tokens,
	})
	handler := transporthttp.RequestLogger(transporthttp.CORS(cfg.CORSOrigins, mux), logger)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	log.Printf("api listening on :%s", cfg.Port)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server error: %v", err)
		}
	case <-stopCtx.Done():
		log.Printf("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("server shutdown error: %v", err)
	}
	log.Printf("server stopped")
}
