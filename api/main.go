package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/lendifyit/lendify-api/internal/config"
	"github.com/lendifyit/lendify-api/internal/db"
	apihttp "github.com/lendifyit/lendify-api/internal/http"
	"github.com/lendifyit/lendify-api/internal/http/handlers"
	"github.com/lendifyit/lendify-api/internal/http/ratelimit"
	"github.com/lendifyit/lendify-api/internal/repo"
	"github.com/lendifyit/lendify-api/internal/seed"
	"github.com/lendifyit/lendify-api/internal/session"
	"github.com/lendifyit/lendify-api/internal/snapshot"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	categoryRepo := repo.NewPostgresCategoryRepository(database)
	itemRepo := repo.NewPostgresItemRepository(database)
	unitRepo := repo.NewPostgresUnitRepository(database)
	borrowerRepo := repo.NewPostgresBorrowerRepository(database)
	adminRepo := repo.NewPostgresAdminRepository(database)
	loanRepo := repo.NewPostgresLoanRepository(database)

	handlers.SetCategoryRepo(categoryRepo)
	handlers.SetItemRepo(itemRepo)
	handlers.SetUnitRepo(unitRepo)
	handlers.SetBorrowerRepo(borrowerRepo)
	handlers.SetAdminRepo(adminRepo)
	handlers.SetLoanRepo(loanRepo)

	sessions := session.NewRedisStore(rdb, cfg.SessionTTL)
	handlers.SetSessionStore(sessions)
	apihttp.SetSessionStore(sessions)

	snap := snapshot.NewStore(categoryRepo, itemRepo, unitRepo, borrowerRepo, adminRepo, loanRepo)
	if err := snap.Reload(); err != nil {
		log.Fatalf("failed to load initial snapshot: %v", err)
	}
	handlers.SetSnapshotStore(snap)

	seeded, err := seed.Run(snap, categoryRepo, unitRepo, adminRepo)
	if err != nil {
		log.Fatalf("failed to seed initial data: %v", err)
	}
	if seeded {
		log.Println("seeded initial categories, units and admin account")
	}

	go ratelimit.StartCleanupLoop()

	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, apihttp.NewRouter()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
