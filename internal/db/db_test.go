package db

import (
	"testing"

	"paybridge/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "localhost",
		DBUser:     "payments",
		DBPassword: "pw",
		DBName:     "paybridge",
		DBPort:     "5432",
	}

	assert.Equal(t,
		"host=localhost user=payments password=pw dbname=paybridge port=5432 sslmode=disable",
		dsn(cfg),
	)
}
