package service

import (
	"context"
	"time"

	"github.com/Totarae/tinyurl/internal/model"
)

// Usage записывает и агрегирует события переходов.
type Usage struct {
	store UsageStore
	now   func() time.Time
}

// NewUsage создаёт учёт переходов поверх хранилища событий.
func NewUsage(store UsageStore) *Usage {
	return &Usage{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Record добавляет одно событие перехода.
func (u *Usage) Record(ctx context.Context, linkID int64, client model.Client) (*model.UsageEvent, error) {
	event := &model.UsageEvent{
		LinkID:     linkID,
		UsedAt:     u.now(),
		ClientHost: client.Host,
		ClientPort: client.Port,
	}
	if err := u.store.RecordUsage(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Status возвращает число событий в окне или сами события при full.
// Пустое окно считается отсутствием данных и возвращает model.ErrNotFound.
func (u *Usage) Status(ctx context.Context, linkID int64, offset, limit int, full bool) (*model.UsageStatus, error) {
	if err := checkWindow(offset, limit); err != nil {
		return nil, err
	}

	if !full {
		n, err := u.store.CountUsage(ctx, linkID, offset, limit)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, model.ErrNotFound
		}
		return &model.UsageStatus{Count: n}, nil
	}

	events, err := u.store.ListUsage(ctx, linkID, offset, limit)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, model.ErrNotFound
	}
	return &model.UsageStatus{Events: events, Count: len(events), Full: true}, nil
}
