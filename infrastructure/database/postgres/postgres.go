package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/config"
)

type Connection struct {
	*sql.DB
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxOpenConns)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &Connection{DB: db}, nil
}

type openFunc func(ctx context.Context) (*Connection, error)

// ConnectWithRetry tenta conectar indefinidamente em intervalo fixo quando retry
// está ativo (produção). Fora disso a primeira falha é devolvida ao chamador
func ConnectWithRetry(ctx context.Context, cfg config.Database, retry bool) (*Connection, error) {
	return connectWithRetry(ctx, func(ctx context.Context) (*Connection, error) {
		return NewConnection(ctx, cfg)
	}, retry, cfg.RetryDelay)
}

func connectWithRetry(ctx context.Context, open openFunc, retry bool, delay time.Duration) (*Connection, error) {
	attempt := 0
	for {
		attempt++

		conn, err := open(ctx)
		if err == nil {
			return conn, nil
		}

		if !retry {
			return nil, err
		}

		logrus.WithError(err).WithFields(logrus.Fields{
			"attempt": attempt,
			"delay":   delay.String(),
		}).Warn("Falha ao conectar ao PostgreSQL, tentando novamente")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}
