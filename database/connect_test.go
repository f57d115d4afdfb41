package database

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/config"
)

func TestDSNIsParsableByPgx(t *testing.T) {
	cfg := &config.Config{
		DBHost: "db", DBPort: "5433", DBUser: "blog", DBPassword: "secret",
		DBName: "blogdb", DBSSLMode: "disable",
	}
	dsn := DSN(cfg)
	assert.Equal(t, "host=db user=blog password=secret dbname=blogdb port=5433 sslmode=disable", dsn)

	connConfig, err := pgx.ParseConfig(dsn)
	require.NoError(t, err)
	assert.Equal(t, "db", connConfig.Host)
	assert.Equal(t, uint16(5433), connConfig.Port)
	assert.Equal(t, "blogdb", connConfig.Database)
}
