// Package service реализует жизненный цикл коротких ссылок и учёт переходов.
package service

import (
	"context"

	"github.com/Totarae/tinyurl/internal/generator"
	"github.com/Totarae/tinyurl/internal/metrics"
	"github.com/Totarae/tinyurl/internal/model"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/Totarae/tinyurl/internal/service LinkStore,UsageStore

// LinkStore хранилище коротких ссылок.
// Уникальность original_url обеспечивается самим хранилищем и распространяется
// на удалённые записи. Нарушение уникальности возвращается как model.ErrDuplicate.
type LinkStore interface {
	// CreateLink сохраняет ссылку и заполняет её ID.
	CreateLink(ctx context.Context, link *model.ShortLink) error
	// CreateLinks сохраняет все ссылки в одной транзакции либо ни одной.
	CreateLinks(ctx context.Context, links []*model.ShortLink) error
	GetLink(ctx context.Context, id int64) (*model.ShortLink, error)
	GetLinkByCode(ctx context.Context, code string) (*model.ShortLink, error)
	ListLinks(ctx context.Context, offset, limit int) ([]*model.ShortLink, error)
	// MarkDeleted помечает ссылку удалённой и возвращает её. Повторный вызов не ошибка.
	MarkDeleted(ctx context.Context, id int64) (*model.ShortLink, error)
	Ping(ctx context.Context) error
}

// UsageStore журнал переходов, только добавление.
type UsageStore interface {
	RecordUsage(ctx context.Context, event *model.UsageEvent) error
	// ListUsage возвращает события ссылки в окне [offset, offset+limit) по порядку ID.
	ListUsage(ctx context.Context, linkID int64, offset, limit int) ([]*model.UsageEvent, error)
	// CountUsage считает события ссылки в том же окне.
	CountUsage(ctx context.Context, linkID int64, offset, limit int) (int, error)
}

func checkWindow(offset, limit int) error {
	if offset < 0 {
		return model.Validationf("offset must be >= 0, got %d", offset)
	}
	if limit < 1 {
		return model.Validationf("limit must be >= 1, got %d", limit)
	}
	return nil
}

// Services набор сервисов, которые используют транспортные слои.
type Services struct {
	Links      *Links
	Usage      *Usage
	Redirector *Redirector
	Health     *HealthReporter
}

// New собирает сервисы поверх хранилищ и генератора.
func New(links LinkStore, usage UsageStore, gen generator.Generator, logger *zap.Logger, m *metrics.Metrics) *Services {
	recorder := NewUsage(usage)
	return &Services{
		Links:      NewLinks(links, gen, logger, m),
		Usage:      recorder,
		Redirector: NewRedirector(links, recorder, logger, m),
		Health:     NewHealthReporter(links),
	}
}
