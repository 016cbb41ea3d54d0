package repositories

import (
	"context"
	"fmt"

	"github.com/Totarae/tinyurl/internal/database"
	"github.com/Totarae/tinyurl/internal/model"
	"github.com/jackc/pgx/v5"
)

// UsageRepository журнал переходов в PostgreSQL.
type UsageRepository struct {
	DB *database.DB
}

// NewUsageRepository создаёт новый экземпляр UsageRepository.
func NewUsageRepository(db *database.DB) *UsageRepository {
	return &UsageRepository{DB: db}
}

// RecordUsage добавляет событие перехода.
func (r *UsageRepository) RecordUsage(ctx context.Context, event *model.UsageEvent) error {
	query := `INSERT INTO usage_events (url_id, used_at, client_host, client_port)
              VALUES ($1, $2, $3, $4)
              RETURNING id`

	err := r.DB.Pool.QueryRow(ctx, query, event.LinkID, event.UsedAt, event.ClientHost, event.ClientPort).Scan(&event.ID)
	if err != nil {
		return translate("insert usage", err)
	}
	return nil
}

// ListUsage возвращает события ссылки в окне.
func (r *UsageRepository) ListUsage(ctx context.Context, linkID int64, offset, limit int) ([]*model.UsageEvent, error) {
	query := `SELECT id, url_id, used_at, client_host, client_port
              FROM usage_events WHERE url_id = $1
              ORDER BY id OFFSET $2 LIMIT $3`
	rows, err := r.DB.Pool.Query(ctx, query, linkID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query usage: %w", err)
	}
	events, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[model.UsageEvent])
	if err != nil {
		return nil, fmt.Errorf("failed to scan usage: %w", err)
	}
	return events, nil
}

// CountUsage количество событий ссылки в окне.
func (r *UsageRepository) CountUsage(ctx context.Context, linkID int64, offset, limit int) (int, error) {
	query := `SELECT COUNT(*) FROM (
                  SELECT 1 FROM usage_events WHERE url_id = $1 ORDER BY id OFFSET $2 LIMIT $3
              ) AS w`
	var count int
	if err := r.DB.Pool.QueryRow(ctx, query, linkID, offset, limit).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count usage: %w", err)
	}
	return count, nil
}
