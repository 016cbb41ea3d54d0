// Package storage содержит хранилища ссылок и событий, не требующие PostgreSQL.
package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/Totarae/tinyurl/internal/model"
)

// Memory потокобезопасное хранилище в памяти процесса.
// Реализует service.LinkStore и service.UsageStore.
type Memory struct {
	byURL  map[string]int64
	byCode map[string]int64
	links  []model.ShortLink
	usage  []model.UsageEvent
	mutex  sync.RWMutex
}

// NewMemory создаёт пустое хранилище.
func NewMemory() *Memory {
	return &Memory{
		byURL:  make(map[string]int64),
		byCode: make(map[string]int64),
	}
}

// CreateLink сохраняет ссылку, проверяя уникальность URL и кода.
func (s *Memory) CreateLink(ctx context.Context, link *model.ShortLink) error {
	return s.CreateLinks(ctx, []*model.ShortLink{link})
}

// CreateLinks сохраняет все ссылки или ни одной.
func (s *Memory) CreateLinks(_ context.Context, links []*model.ShortLink) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	seenURL := make(map[string]struct{}, len(links))
	seenCode := make(map[string]struct{}, len(links))
	for _, l := range links {
		_, dupURL := s.byURL[l.OriginalURL]
		_, dupCode := s.byCode[l.ShortCode]
		_, batchURL := seenURL[l.OriginalURL]
		_, batchCode := seenCode[l.ShortCode]
		if dupURL || dupCode || batchURL || batchCode {
			return fmt.Errorf("insert %q: %w", l.OriginalURL, model.ErrDuplicate)
		}
		seenURL[l.OriginalURL] = struct{}{}
		seenCode[l.ShortCode] = struct{}{}
	}

	for _, l := range links {
		l.ID = int64(len(s.links) + 1)
		s.links = append(s.links, *l)
		s.byURL[l.OriginalURL] = l.ID
		s.byCode[l.ShortCode] = l.ID
	}
	return nil
}

// GetLink возвращает копию ссылки по ID.
func (s *Memory) GetLink(_ context.Context, id int64) (*model.ShortLink, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if id < 1 || id > int64(len(s.links)) {
		return nil, model.ErrNotFound
	}
	link := s.links[id-1]
	return &link, nil
}

// GetLinkByCode возвращает копию ссылки по короткому коду.
func (s *Memory) GetLinkByCode(ctx context.Context, code string) (*model.ShortLink, error) {
	s.mutex.RLock()
	id, ok := s.byCode[code]
	s.mutex.RUnlock()
	if !ok {
		return nil, model.ErrNotFound
	}
	return s.GetLink(ctx, id)
}

// ListLinks возвращает страницу ссылок в порядке вставки.
func (s *Memory) ListLinks(_ context.Context, offset, limit int) ([]*model.ShortLink, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	lo, hi := window(len(s.links), offset, limit)
	out := make([]*model.ShortLink, 0, hi-lo)
	for i := lo; i < hi; i++ {
		link := s.links[i]
		out = append(out, &link)
	}
	return out, nil
}

// MarkDeleted выставляет флаг deleted.
func (s *Memory) MarkDeleted(_ context.Context, id int64) (*model.ShortLink, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if id < 1 || id > int64(len(s.links)) {
		return nil, model.ErrNotFound
	}
	s.links[id-1].Deleted = true
	link := s.links[id-1]
	return &link, nil
}

// Ping всегда успешен.
func (s *Memory) Ping(context.Context) error {
	return nil
}

// RecordUsage добавляет событие. Ссылка должна существовать.
func (s *Memory) RecordUsage(_ context.Context, event *model.UsageEvent) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if event.LinkID < 1 || event.LinkID > int64(len(s.links)) {
		return fmt.Errorf("record usage for url_id %d: %w", event.LinkID, model.ErrNotFound)
	}
	event.ID = int64(len(s.usage) + 1)
	s.usage = append(s.usage, *event)
	return nil
}

// ListUsage возвращает события ссылки в окне.
func (s *Memory) ListUsage(_ context.Context, linkID int64, offset, limit int) ([]*model.UsageEvent, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var matched []*model.UsageEvent
	for i := range s.usage {
		if s.usage[i].LinkID == linkID {
			event := s.usage[i]
			matched = append(matched, &event)
		}
	}
	lo, hi := window(len(matched), offset, limit)
	return matched[lo:hi], nil
}

// CountUsage считает события ссылки в окне.
func (s *Memory) CountUsage(ctx context.Context, linkID int64, offset, limit int) (int, error) {
	events, err := s.ListUsage(ctx, linkID, offset, limit)
	return len(events), err
}

func window(n, offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > n {
		offset = n
	}
	hi := n
	// limit сравнивается с остатком, иначе offset+limit переполняется
	if limit >= 0 && limit < n-offset {
		hi = offset + limit
	}
	return offset, hi
}
