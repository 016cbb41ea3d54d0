package service

import (
	"context"
	"errors"

	"github.com/Totarae/tinyurl/internal/metrics"
	"github.com/Totarae/tinyurl/internal/model"
	"go.uber.org/zap"
)

// Redirector обслуживает переход по короткой ссылке:
// поиск, проверка удаления, запись события, ответ.
type Redirector struct {
	links   LinkStore
	usage   *Usage
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewRedirector создаёт оркестратор переходов.
func NewRedirector(links LinkStore, usage *Usage, logger *zap.Logger, m *metrics.Metrics) *Redirector {
	return &Redirector{links: links, usage: usage, logger: logger, metrics: m}
}

// Redirect возвращает адрес назначения для ссылки с данным ID.
func (r *Redirector) Redirect(ctx context.Context, id int64, client model.Client) (string, error) {
	link, err := r.links.GetLink(ctx, id)
	return r.serve(ctx, link, err, client)
}

// RedirectByCode то же, что Redirect, но поиск по короткому коду.
func (r *Redirector) RedirectByCode(ctx context.Context, code string, client model.Client) (string, error) {
	link, err := r.links.GetLinkByCode(ctx, code)
	return r.serve(ctx, link, err, client)
}

func (r *Redirector) serve(ctx context.Context, link *model.ShortLink, lookupErr error, client model.Client) (string, error) {
	switch {
	case errors.Is(lookupErr, model.ErrNotFound):
		r.metrics.Redirect(metrics.OutcomeNotFound)
		return "", lookupErr
	case lookupErr != nil:
		r.metrics.Redirect(metrics.OutcomeError)
		return "", lookupErr
	case link.Deleted:
		r.metrics.Redirect(metrics.OutcomeGone)
		return "", model.ErrGone
	}

	// Ошибка учёта не мешает переходу.
	if _, err := r.usage.Record(ctx, link.ID, client); err != nil {
		r.metrics.UsageRecordFailed()
		r.logger.Error("failed to record usage",
			zap.Int64("url_id", link.ID),
			zap.String("client_host", client.Host),
			zap.Error(err),
		)
	}

	r.metrics.Redirect(metrics.OutcomeRedirected)
	return link.OriginalURL, nil
}
