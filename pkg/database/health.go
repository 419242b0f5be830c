package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"time"
)

// HealthStatus describes connection pool health.
type HealthStatus struct {
	Reachable bool          `json:"reachable"`
	Latency   time.Duration `json:"latency"`
	OpenConns int           `json:"open_conns"`
	InUse     int           `json:"in_use"`
}

// Health pings the database and reports pool statistics.
func Health(ctx context.Context, db *stdsql.DB) (*HealthStatus, error) {
	start := time.Now()
	err := db.PingContext(ctx)
	stats := db.Stats()

	status := &HealthStatus{
		Reachable: err == nil,
		Latency:   time.Since(start),
		OpenConns: stats.OpenConnections,
		InUse:     stats.InUse,
	}
	if err != nil {
		return status, fmt.Errorf("database ping failed: %w", err)
	}
	return status, nil
}
