package sqlite

import (
	"context"
	"fmt"

	"github.com/Totarae/tinyurl/internal/model"
)

// RecordUsage добавляет событие перехода.
func (s *Store) RecordUsage(ctx context.Context, event *model.UsageEvent) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO usage_events (url_id, used_at, client_host, client_port) VALUES (?, ?, ?, ?)`,
		event.LinkID, event.UsedAt, event.ClientHost, event.ClientPort,
	)
	if err != nil {
		return translate("insert usage", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read usage id: %w", err)
	}
	event.ID = id
	return nil
}

// ListUsage возвращает события ссылки в окне.
func (s *Store) ListUsage(ctx context.Context, linkID int64, offset, limit int) ([]*model.UsageEvent, error) {
	events := []*model.UsageEvent{}
	err := s.db.SelectContext(ctx, &events,
		`SELECT id, url_id, used_at, client_host, client_port FROM usage_events
		 WHERE url_id = ? ORDER BY id LIMIT ? OFFSET ?`,
		linkID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list usage: %w", err)
	}
	return events, nil
}

// CountUsage считает события ссылки в окне.
func (s *Store) CountUsage(ctx context.Context, linkID int64, offset, limit int) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM (SELECT 1 FROM usage_events WHERE url_id = ? ORDER BY id LIMIT ? OFFSET ?)`,
		linkID, limit, offset,
	)
	if err != nil {
		return 0, fmt.Errorf("count usage: %w", err)
	}
	return count, nil
}
