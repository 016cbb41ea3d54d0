// Package sqlite хранилище ссылок и событий поверх SQLite или Turso (libsql).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Totarae/tinyurl/internal/model"
	"github.com/jmoiron/sqlx"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS short_links (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		original_url TEXT      NOT NULL UNIQUE,
		short_code   TEXT      NOT NULL UNIQUE,
		created_at   TIMESTAMP NOT NULL,
		deleted      BOOLEAN   NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS usage_events (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		url_id      INTEGER   NOT NULL REFERENCES short_links (id),
		used_at     TIMESTAMP NOT NULL,
		client_host TEXT      NOT NULL DEFAULT '',
		client_port INTEGER   NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_usage_events_url_id ON usage_events (url_id, id)`,
}

// Store реализует service.LinkStore и service.UsageStore.
type Store struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// New оборачивает готовое подключение. Схема не создаётся.
func New(db *sqlx.DB, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// driverFor выбирает драйвер по адресу: удалённая база Turso или локальный файл.
func driverFor(path string) string {
	if strings.HasPrefix(path, "libsql://") || strings.HasPrefix(path, "wss://") || strings.HasPrefix(path, "https://") {
		return "libsql"
	}
	return "sqlite"
}

// Open подключается к базе, включает внешние ключи и создаёт схему.
func Open(ctx context.Context, path string, logger *zap.Logger) (*Store, error) {
	driver := driverFor(path)
	db, err := sqlx.Open(driver, path)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	if driver == "sqlite" {
		// один писатель; :memory: живёт в пределах соединения
		db.SetMaxOpenConns(1)
		if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s database: %w", driver, err)
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}

	logger.Info("sql storage ready", zap.String("driver", driver))
	return New(db, logger), nil
}

// Close закрывает подключение.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping проверяет доступность базы.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// translate переводит ошибки драйвера в ошибки домена.
// Оба драйвера сообщают о нарушении ограничений только текстом.
func translate(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, model.ErrNotFound)
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint failed"):
		return fmt.Errorf("%s: %w", op, model.ErrDuplicate)
	case strings.Contains(msg, "foreign key constraint failed"):
		return fmt.Errorf("%s: %w", op, model.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
