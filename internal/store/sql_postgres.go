package store

import (
	"context"
	"crypto/tls"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/rewards-backend/internal/config"
	"github.com/MKhiriev/rewards-backend/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

const (
	maxOpenConns = 10
	maxIdleConns = 4
	pingTimeout  = 5 * time.Second
)

// DB is the process-wide connection pool handle passed into every repository.
//
// A nil *DB stands for "DATABASE_URL not configured": every method then
// returns [ErrDatabaseNotConfigured] instead of panicking.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectPostgres opens a pooled *sql.DB over pgx for cfg.
//
// An empty DSN yields [ErrDatabaseNotConfigured]; the caller may keep running
// with a nil *DB. The TLS policy is taken from cfg.SSLMode. An unreachable
// database is logged but not treated as an error: the pool connects lazily
// and the database may become available later.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.DSN == "" {
		return nil, ErrDatabaseNotConfigured
	}

	pgCfg, err := pgx.ParseConfig(cfg.DSN)
	if err != nil {
		// pgx error messages may echo the DSN, so only the sentinel goes up
		log.Error().Str("func", "NewConnectPostgres").Msg("error parsing DATABASE_URL")
		return nil, fmt.Errorf("%w: invalid DATABASE_URL", ErrBuildingSQLQuery)
	}
	applySSLMode(pgCfg, cfg.SSLMode())

	conn := stdlib.OpenDB(*pgCfg)
	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)

	db := &DB{
		DB:     conn,
		logger: log,
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err = conn.PingContext(pingCtx); err != nil {
		log.Warn().Err(err).Str("func", "NewConnectPostgres").Msg("database is not reachable yet")
		return db, nil
	}
	log.Info().Str("func", "NewConnectPostgres").Str("host", pgCfg.Host).Msg("connected to database successfully")

	return db, nil
}

// applySSLMode overrides the TLS settings derived from the DSN on the primary
// host and on every fallback.
func applySSLMode(pgCfg *pgx.ConnConfig, mode config.SSLMode) {
	pgCfg.TLSConfig = tlsConfig(mode, pgCfg.Host)
	for _, fb := range pgCfg.Fallbacks {
		fb.TLSConfig = tlsConfig(mode, fb.Host)
	}
}

func tlsConfig(mode config.SSLMode, host string) *tls.Config {
	switch mode {
	case config.SSLDisabled:
		return nil
	case config.SSLVerify:
		return &tls.Config{ServerName: host, MinVersion: tls.VersionTLS12}
	default:
		// managed providers often present chains we cannot verify
		return &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}
}

// Configured reports whether the handle is backed by a connection pool.
func (db *DB) Configured() bool {
	return db != nil && db.DB != nil
}

func (db *DB) conn() (*sql.DB, error) {
	if !db.Configured() {
		return nil, ErrDatabaseNotConfigured
	}
	return db.DB, nil
}

// Ping verifies that the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	conn, err := db.conn()
	if err != nil {
		return err
	}
	if err = conn.PingContext(ctx); err != nil {
		return wrapDBError(ErrExecutingQuery, err)
	}
	return nil
}

// Now returns the current time of the database server.
func (db *DB) Now(ctx context.Context) (time.Time, error) {
	conn, err := db.conn()
	if err != nil {
		return time.Time{}, err
	}

	var now time.Time
	if err = conn.QueryRowContext(ctx, selectNow).Scan(&now); err != nil {
		return time.Time{}, wrapDBError(ErrExecutingQuery, err)
	}
	return now, nil
}

// Close releases the pool. Closing an unconfigured handle is a no-op.
func (db *DB) Close() error {
	if !db.Configured() {
		return nil
	}
	return db.DB.Close()
}
