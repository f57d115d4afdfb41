package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("ES_INDEX", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("SEED_CATEGORIES", "")
	t.Setenv("SEED_USERS", "")
	t.Setenv("DB_MAX_CONNS", "lots")

	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "posts", cfg.ESIndex)
	assert.Equal(t, 20, cfg.DBMaxConns)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Empty(t, cfg.SeedCategories)
	assert.Empty(t, cfg.SeedUsers)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("SEED_CATEGORIES", "toys, books ,,")
	t.Setenv("SEED_USERS", "Ann Lee, Bob Ray")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("DB_MAX_CONNS", "7")

	cfg := LoadConfig()
	assert.Equal(t, "memory", cfg.DBDriver)
	assert.Equal(t, []string{"toys", "books"}, cfg.SeedCategories)
	assert.Equal(t, []string{"Ann Lee", "Bob Ray"}, cfg.SeedUsers)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 7, cfg.DBMaxConns)
}
