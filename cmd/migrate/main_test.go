package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sample = `-- +migrate Up
CREATE TABLE orders (id BIGSERIAL PRIMARY KEY);

-- +migrate Down
DROP TABLE orders;
`

func TestExtractMigrationPart(t *testing.T) {
	up := extractMigrationPart(sample, "Up")
	assert.Contains(t, up, "CREATE TABLE orders")
	assert.NotContains(t, up, "DROP TABLE")

	down := extractMigrationPart(sample, "Down")
	assert.Contains(t, down, "DROP TABLE orders")
	assert.NotContains(t, down, "CREATE TABLE")
}

func TestExtractMigrationPart_MissingSection(t *testing.T) {
	assert.Empty(t, extractMigrationPart("SELECT 1;", "Up"))
}
