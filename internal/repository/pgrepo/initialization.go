package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

const (
	maxConnAttempts   uint = 30
	connRetryInterval      = 3 * time.Second
)

// Connect устанавливает соединение с postgres (с ретраями, пока БД поднимается)
// и применяет миграции. Возвращает готовый к работе пул.
func Connect(ctx context.Context, migrationsDir, dsn string, l *logrus.Logger) (*pgxpool.Pool, error) {
	var attempts uint

	var pool *pgxpool.Pool
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err() //nolint:wrapcheck
		default:
		}

		p, connErr := newPostgresPool(ctx, dsn)
		if connErr == nil {
			pool = p
			break
		}

		attempts++
		if attempts >= maxConnAttempts {
			return nil, fmt.Errorf("init postgres connection after %d attempts: %w", maxConnAttempts, connErr)
		}
		l.WithError(connErr).
			WithField("CurrentAttempt", fmt.Sprintf("#%d / %d", attempts, maxConnAttempts)).
			Warnf("init postgres connection error, retrying in %.f seconds", connRetryInterval.Seconds())
		time.Sleep(connRetryInterval)
	}

	if err := postgresMigrate(migrationsDir, dsn); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func newPostgresPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, confErr := pgxpool.ParseConfig(dsn)
	if confErr != nil {
		return nil, fmt.Errorf("parse postgres config: %s", confErr.Error())
	}
	pool, poolErr := pgxpool.NewWithConfig(ctx, poolConfig)
	if poolErr != nil {
		return nil, fmt.Errorf("failed to create pool: %s", poolErr.Error())
	}

	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %s", pingErr.Error())
	}

	return pool, nil
}

func postgresMigrate(dir string, dsn string) error {
	m, mErr := migrate.New("file://"+dir, dsn)
	if mErr != nil {
		return fmt.Errorf("failed to create migrate instance: %w", mErr)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
