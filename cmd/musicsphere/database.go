package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
)

const (
	databasePingTimeout    = 5 * time.Second
	databaseWaitMax        = 30 * time.Second
	databaseBackoffInitial = 500 * time.Millisecond
	databaseBackoffMax     = 5 * time.Second
)

// openDatabase opens the Postgres pool and waits for the instance to answer
// pings before handing it to the store. Nothing can serve until the cache
// tables are reachable, so startup blocks here rather than failing fast.
func openDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	deadline := time.Now().Add(databaseWaitMax)
	backoff := databaseBackoffInitial

	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, databasePingTimeout)
		pingErr := db.PingContext(pingCtx)
		cancel()

		if pingErr == nil {
			if attempt > 1 {
				log.Info().Int("attempts", attempt).Msg("database reachable")
			}
			return db, nil
		}

		if ctx.Err() != nil || time.Now().After(deadline) {
			_ = db.Close()
			return nil, fmt.Errorf("ping database: %w", pingErr)
		}

		log.Warn().
			Err(pingErr).
			Int("attempt", attempt).
			Dur("retry_in", backoff).
			Msg("database not ready")

		time.Sleep(backoff)
		backoff = nextBackoff(backoff)
	}
}

// nextBackoff doubles the wait between ping attempts up to the cap.
func nextBackoff(d time.Duration) time.Duration {
	d *= 2
	if d > databaseBackoffMax {
		return databaseBackoffMax
	}
	return d
}
