package main

import (
	"context"
	"convoy-route-service/internal/adapters/cache"
	"convoy-route-service/internal/adapters/geometry"
	"convoy-route-service/internal/adapters/repositories"
	"convoy-route-service/internal/api"
	"convoy-route-service/internal/config"
	"convoy-route-service/internal/metrics"
	"convoy-route-service/internal/platform/db"
	"convoy-route-service/internal/ports"
	"convoy-route-service/internal/services"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires concrete adapters (CSV or Postgres, OSRM, Redis) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	var conn *sql.DB
	if cfg.DatabaseURL != "" {
		conn, err = db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()
	}

	repo, err := newWorldRepository(cfg, conn)
	if err != nil {
		log.Fatal(err)
	}

	world, err := repo.LoadWorld(ctx)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf(
		"world loaded source=%s supply_points=%d destinations=%d vehicles=%d segments=%d",
		cfg.DataSource, len(world.SupplyPoints), len(world.Destinations), len(world.Vehicles), len(world.Segments),
	)

	optimizer := services.NewOptimizer(world, services.OptimizerOptions{
		PriorityTieBreak: cfg.Optimizer.PriorityTieBreak,
	})

	geometryCache, err := newGeometryCache(cfg, conn)
	if err != nil {
		log.Fatal(err)
	}
	provider := geometry.NewOSRMRouteProvider(cfg.Geometry.BaseURL, cfg.Geometry.Profile, cfg.Geometry.Timeout, geometryCache)

	metrics.RegisterDefault()
	router := api.NewRouter(optimizer, provider)

	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func newWorldRepository(cfg *config.Config, conn *sql.DB) (ports.WorldRepository, error) {
	cleaner := repositories.NewCleaner(cfg.Fleet)

	switch cfg.DataSource {
	case "csv":
		return repositories.NewCSVWorldRepository(cfg.DataDir, cleaner), nil
	case "postgres":
		if conn == nil {
			return nil, fmt.Errorf("world repository: DATA_SOURCE=postgres requires DATABASE_URL")
		}
		return repositories.NewPostgresWorldRepository(conn, cleaner), nil
	}
	return nil, fmt.Errorf("world repository: unknown data source %q", cfg.DataSource)
}

// Redis wins when configured; otherwise Postgres when a connection is
// open; otherwise road geometry is not cached.
func newGeometryCache(cfg *config.Config, conn *sql.DB) (ports.GeometryCache, error) {
	switch {
	case cfg.RedisURL != "":
		return cache.NewRedisGeometryCacheFromURL(cfg.RedisURL, cfg.Geometry.CacheTTL)
	case conn != nil:
		return cache.NewSQLGeometryCache(conn, cfg.Geometry.CacheTTL), nil
	}
	return nil, nil
}
