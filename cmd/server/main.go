package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"courier-dispatch-service/internal/adapters/cache"
	"courier-dispatch-service/internal/adapters/repositories"
	"courier-dispatch-service/internal/api"
	"courier-dispatch-service/internal/config"
	"courier-dispatch-service/internal/domain"
	"courier-dispatch-service/internal/platform/db"
	"courier-dispatch-service/internal/ports"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis) behind ports and starts the
// HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	// Schema creation is idempotent; running it at startup keeps local runs
	// at zero setup steps.
	if err := repositories.InitSchema(database); err != nil {
		log.Fatal(err)
	}

	pkgRepo := repositories.NewSQLPackageRepository(database)
	vehicleRepo := repositories.NewSQLVehicleRepository(database)

	// The plan cache is optional; the service degrades to planning every
	// request when Redis is absent or unreachable.
	var planCache ports.PlanCache
	if redisURL := os.Getenv("REDIS_URL"); strings.TrimSpace(redisURL) != "" {
		rc, err := cache.NewRedisPlanCache(redisURL)
		if err != nil {
			log.Fatal(err)
		}
		defer rc.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rc.Ping(ctx); err != nil {
			log.Printf("redis unreachable, continuing without plan cache: %v", err)
		} else {
			planCache = rc
		}
		cancel()
	}

	router := api.NewRouter(pkgRepo, vehicleRepo, domain.DefaultCatalog(), planCache)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
