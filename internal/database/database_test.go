package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSupportedDriver(t *testing.T) {
	assert.True(t, SupportedDriver(DriverPostgres))
	assert.True(t, SupportedDriver(DriverMySQL))
	assert.False(t, SupportedDriver("sqlite3"))
	assert.False(t, SupportedDriver(""))
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	cfg := Config{
		Driver:             "invalid",
		ConnectionString:   "invalid",
		MaxOpenConnections: 10,
		MaxIdleConnections: 5,
		ConnMaxLifetime:    time.Hour,
	}

	db, err := Connect(cfg)
	assert.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestConnect_PingFailure(t *testing.T) {
	cfg := Config{
		Driver:             DriverPostgres,
		ConnectionString:   "this is not a connection string",
		MaxOpenConnections: 10,
		MaxIdleConnections: 5,
		ConnMaxLifetime:    time.Hour,
	}

	db, err := Connect(cfg)
	assert.Error(t, err)
	assert.Nil(t, db)
}
