package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"example.com/gamification/internal/achievement"
	"example.com/gamification/internal/api"
	"example.com/gamification/internal/auth"
	"example.com/gamification/internal/catalog"
	"example.com/gamification/internal/coins"
	"example.com/gamification/internal/config"
	"example.com/gamification/internal/memstore"
	"example.com/gamification/internal/metrics"
	persistence "example.com/gamification/internal/persistence/postgres"
	"example.com/gamification/internal/planner"
	"example.com/gamification/internal/scheduler"
	httptransport "example.com/gamification/internal/transport/http"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		activities metrics.ActivityStore
		progress   achievement.Store
		wallets    coins.Store
		plans      planner.PlanStore
	)

	if cfg.PostgresURL != "" {
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		defer pool.Close()

		activities = persistence.NewActivityStore(pool)
		progress = persistence.NewProgressStore(pool)
		wallets = persistence.NewWalletStore(pool)
		plans = persistence.NewPlanStore(pool)
	} else {
		// Local dev without a database.
		log.Println("POSTGRES_URL not set, using in-memory stores")
		activities = &memstore.ActivityStore{}
		progress = memstore.NewProgressStore()
		wallets = memstore.NewWalletStore()
		plans = memstore.NewPlanStore()
	}

	var upstream catalog.Provider
	if cfg.CatalogURL != "" {
		upstream = catalog.NewHTTPProvider(cfg.CatalogURL, cfg.CatalogToken, cfg.HTTPTimeout)
	} else {
		upstream = catalog.NewStatic(catalog.SeedEntries())
	}
	cached := catalog.NewCached(upstream, cfg.CatalogCacheTTL)

	aggregator := metrics.NewAggregator(activities, progress)
	engine := achievement.NewEngine(progress, aggregator)
	ledger := coins.NewLedger(wallets, uuid.NewString)

	sweeper := scheduler.NewSweeper(engine, progress)
	if err := sweeper.Start(cfg.SweepSchedule); err != nil {
		log.Fatalf("failed to schedule achievement sweep: %v", err)
	}
	defer sweeper.Stop()

	handler := api.NewHandler(engine, ledger, plans, cached)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	// Basic request logger
	logger := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Printf("%s %s", r.Method, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}

	authMiddleware := auth.NewMiddleware(auth.Config{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer})

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.HTTPTimeout,
		IdleTimeout:  60 * time.Second,
	}, authMiddleware.Wrap(logger(mux)))

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("gamification-service listening on %s", cfg.HTTPAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownCh
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
