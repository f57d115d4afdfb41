package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"postboard/config"
	"postboard/database"
	"postboard/models"
	"postboard/repository"
	"postboard/routes"
	"postboard/search"
	"postboard/utils"
)

func main() {
	cfg := config.LoadConfig()

	if err := utils.InitLogger(cfg.LogDir); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}

	deps := routes.Deps{
		Store:       store,
		Indexer:     search.Noop{},
		JWTSecret:   cfg.JWTSecret,
		CORSOrigins: cfg.CORSOrigins,
	}

	// Redis нужен только для чёрного списка токенов
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		deps.Blacklist = utils.NewRedisBlacklist(rdb)
		log.Println("Connected to Redis")
	} else {
		log.Println("REDIS_ADDR not set, token revocation disabled")
	}

	if cfg.ESAddr != "" {
		es, err := search.New(cfg.ESAddr, cfg.ESIndex)
		if err != nil {
			log.Fatalf("es init error: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := es.EnsureIndex(ctx); err != nil {
			log.Printf("es index %s not ensured: %v", cfg.ESIndex, err)
		}
		cancel()
		deps.Indexer = es
		log.Printf("Search enabled on index %s", cfg.ESIndex)
	}

	r := routes.NewRouter(deps)

	log.Printf("Server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func openStore(cfg *config.Config) (repository.Store, error) {
	if cfg.DBDriver == "memory" {
		store := repository.NewMemoryStore()
		for _, name := range cfg.SeedCategories {
			store.AddCategory(name)
		}
		for i, full := range cfg.SeedUsers {
			first, last, _ := strings.Cut(full, " ")
			store.AddUser(models.User{ID: uint(i + 1), FirstName: first, LastName: strings.TrimSpace(last)})
		}
		log.Println("Using in-memory store")
		return store, nil
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	log.Println("Connected to PostgreSQL")

	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	log.Println("Migration complete")

	if err := database.SeedCategories(db, cfg.SeedCategories); err != nil {
		return nil, err
	}
	return repository.NewGormStore(db), nil
}
