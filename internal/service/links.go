package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Totarae/tinyurl/internal/generator"
	"github.com/Totarae/tinyurl/internal/metrics"
	"github.com/Totarae/tinyurl/internal/model"
	"github.com/Totarae/tinyurl/internal/util"
	"go.uber.org/zap"
)

// Links управляет созданием, чтением и удалением коротких ссылок.
type Links struct {
	store     LinkStore
	generator generator.Generator
	logger    *zap.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewLinks создаёт сервис ссылок. Генератор передаётся явно.
func NewLinks(store LinkStore, gen generator.Generator, logger *zap.Logger, m *metrics.Metrics) *Links {
	return &Links{
		store:     store,
		generator: gen,
		logger:    logger,
		metrics:   m,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create нормализует URL, получает код и сохраняет ссылку.
// Ошибка генератора возвращается до обращения к хранилищу.
func (s *Links) Create(ctx context.Context, rawURL string) (*model.ShortLink, error) {
	link, err := s.build(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if err := s.store.CreateLink(ctx, link); err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			s.logger.Info("duplicate link", zap.String("url", link.OriginalURL))
			return nil, err
		}
		return nil, fmt.Errorf("create link: %w", err)
	}

	s.metrics.LinksCreated(1)
	s.logger.Debug("link created", zap.Int64("id", link.ID), zap.String("code", link.ShortCode))
	return link, nil
}

// CreateBatch создаёт все ссылки атомарно. Если хотя бы для одного URL
// не удалось получить код или нарушена уникальность, не сохраняется ничего.
func (s *Links) CreateBatch(ctx context.Context, rawURLs []string) ([]*model.ShortLink, error) {
	if len(rawURLs) == 0 {
		return nil, model.Validationf("batch is empty")
	}

	links := make([]*model.ShortLink, 0, len(rawURLs))
	for _, raw := range rawURLs {
		link, err := s.build(ctx, raw)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	if err := s.store.CreateLinks(ctx, links); err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			s.logger.Info("duplicate link in batch", zap.Int("size", len(links)))
			return nil, err
		}
		s.logger.Error("failed to save batch", zap.Error(err))
		return nil, fmt.Errorf("create links: %w", err)
	}

	s.metrics.LinksCreated(len(links))
	return links, nil
}

// Get возвращает ссылку по ID, в том числе удалённую.
func (s *Links) Get(ctx context.Context, id int64) (*model.ShortLink, error) {
	return s.store.GetLink(ctx, id)
}

// List возвращает страницу ссылок в порядке создания.
func (s *Links) List(ctx context.Context, offset, limit int) ([]*model.ShortLink, error) {
	if err := checkWindow(offset, limit); err != nil {
		return nil, err
	}
	return s.store.ListLinks(ctx, offset, limit)
}

// Delete помечает ссылку удалённой. Идемпотентна.
func (s *Links) Delete(ctx context.Context, id int64) (*model.ShortLink, error) {
	link, err := s.store.MarkDeleted(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("link marked as deleted", zap.Int64("id", id))
	return link, nil
}

func (s *Links) build(ctx context.Context, rawURL string) (*model.ShortLink, error) {
	normalized := util.NormalizeURL(rawURL)

	code, err := s.generator.Shorten(ctx, normalized)
	if err != nil {
		if generator.IsRejected(err) {
			s.logger.Info("generator rejected url", zap.String("url", normalized), zap.Error(err))
			return nil, &model.GeneratorError{URL: normalized, Err: err}
		}
		s.logger.Error("generator failed", zap.String("url", normalized), zap.Error(err))
		return nil, fmt.Errorf("generate short code: %w", err)
	}

	return &model.ShortLink{
		OriginalURL: normalized,
		ShortCode:   code,
		CreatedAt:   s.now(),
	}, nil
}
