// Package database provides database helpers for integration tests.
package database

import (
	"testing"

	"github.com/conclave-ai/conclave/pkg/database"
	"github.com/conclave-ai/conclave/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
// Each test gets its own schema; cleanup is registered on the test.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
