package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// DBDriver: postgres или memory
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBMaxConns int
	JWTSecret  string
	// Redis нужен только для отзыва токенов; пустой адрес отключает logout
	RedisAddr     string
	RedisPassword string
	// Elasticsearch; пустой адрес отключает поиск
	ESAddr         string
	ESIndex        string
	CORSOrigins    []string
	LogDir         string
	SeedCategories []string
	// SeedUsers - "Имя Фамилия" для in-memory хранилища, id по порядку с 1
	SeedUsers []string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return &Config{
		Port:           getenvOrDefault("PORT", "8080"),
		DBDriver:       getenvOrDefault("DB_DRIVER", "postgres"),
		DBHost:         getenvOrDefault("DB_HOST", "localhost"),
		DBPort:         getenvOrDefault("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSSLMode:      getenvOrDefault("DB_SSLMODE", "disable"),
		DBMaxConns:     getenvIntOrDefault("DB_MAX_CONNS", 20),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		ESAddr:         os.Getenv("ES_ADDR"),
		ESIndex:        getenvOrDefault("ES_INDEX", "posts"),
		CORSOrigins:    splitList(getenvOrDefault("CORS_ORIGINS", "http://localhost:3000")),
		LogDir:         getenvOrDefault("LOG_DIR", "logs"),
		SeedCategories: splitList(os.Getenv("SEED_CATEGORIES")),
		SeedUsers:      splitList(os.Getenv("SEED_USERS")),
	}
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvIntOrDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
