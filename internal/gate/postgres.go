package gate

import (
	"context"
	"fmt"
	"time"

	"aurora/pkg/serrors"

	"github.com/jackc/pgx/v5"
)

// PostgresOptions describe the relational store endpoint to probe.
type PostgresOptions struct {
	Username string
	Password string
	Host     string
	Port     int
	Database string
	SslMode  string
}

// PostgresCheck probes the relational store by opening a fresh connection and
// pinging it, succeeding only once the server accepts connections.
type PostgresCheck struct {
	connCfg *pgx.ConnConfig
	timeout time.Duration
}

// NewPostgresCheck creates a Postgres connection-acceptance check. An
// unparseable endpoint configuration is a fatal local failure and is returned
// immediately rather than retried.
func NewPostgresCheck(opts PostgresOptions, timeout time.Duration) (*PostgresCheck, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s sslmode=%s",
		opts.Host,
		opts.Port,
		opts.Username,
		opts.Database,
		opts.Password,
		opts.SslMode)

	connCfg, err := pgx.ParseConfig(connStr)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "invalid postgres probe config")
	}

	return &PostgresCheck{
		connCfg: connCfg,
		timeout: timeout,
	}, nil
}

// Name implements Check.
func (c *PostgresCheck) Name() string { return "postgres" }

// Ready opens a connection, pings it and closes it again. Connection and ping
// failures are transient unavailability.
func (c *PostgresCheck) Ready(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conn, err := pgx.ConnectConfig(ctx, c.connCfg)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "postgres not accepting connections")
	}
	defer func() { _ = conn.Close(ctx) }()

	if err := conn.Ping(ctx); err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "postgres ping failed")
	}

	return nil
}
