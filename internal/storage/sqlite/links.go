package sqlite

import (
	"context"
	"fmt"

	"github.com/Totarae/tinyurl/internal/model"
	"github.com/jmoiron/sqlx"
)

const (
	insertLink  = `INSERT INTO short_links (original_url, short_code, created_at, deleted) VALUES (?, ?, ?, 0)`
	selectLinks = `SELECT id, original_url, short_code, created_at, deleted FROM short_links`
)

// CreateLink сохраняет ссылку и заполняет ID.
func (s *Store) CreateLink(ctx context.Context, link *model.ShortLink) error {
	return insert(ctx, s.db, link)
}

// CreateLinks сохраняет все ссылки в одной транзакции.
func (s *Store) CreateLinks(ctx context.Context, links []*model.ShortLink) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}
	defer tx.Rollback()

	for _, link := range links {
		if err := insert(ctx, tx, link); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return translate("commit batch", err)
	}
	return nil
}

func insert(ctx context.Context, ex sqlx.ExecerContext, link *model.ShortLink) error {
	res, err := ex.ExecContext(ctx, insertLink, link.OriginalURL, link.ShortCode, link.CreatedAt)
	if err != nil {
		return translate("insert link", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read link id: %w", err)
	}
	link.ID = id
	return nil
}

// GetLink возвращает ссылку по ID.
func (s *Store) GetLink(ctx context.Context, id int64) (*model.ShortLink, error) {
	var link model.ShortLink
	if err := s.db.GetContext(ctx, &link, selectLinks+` WHERE id = ?`, id); err != nil {
		return nil, translate("get link", err)
	}
	return &link, nil
}

// GetLinkByCode возвращает ссылку по короткому коду.
func (s *Store) GetLinkByCode(ctx context.Context, code string) (*model.ShortLink, error) {
	var link model.ShortLink
	if err := s.db.GetContext(ctx, &link, selectLinks+` WHERE short_code = ?`, code); err != nil {
		return nil, translate("get link by code", err)
	}
	return &link, nil
}

// ListLinks возвращает страницу ссылок по возрастанию ID.
func (s *Store) ListLinks(ctx context.Context, offset, limit int) ([]*model.ShortLink, error) {
	links := []*model.ShortLink{}
	if err := s.db.SelectContext(ctx, &links, selectLinks+` ORDER BY id LIMIT ? OFFSET ?`, limit, offset); err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	return links, nil
}

// MarkDeleted помечает ссылку удалённой. Обновление и чтение в одной транзакции.
func (s *Store) MarkDeleted(ctx context.Context, id int64) (*model.ShortLink, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `UPDATE short_links SET deleted = 1 WHERE id = ?`, id)
	if err != nil {
		return nil, translate("mark deleted", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, fmt.Errorf("mark deleted %d: %w", id, model.ErrNotFound)
	}

	var link model.ShortLink
	if err := tx.GetContext(ctx, &link, selectLinks+` WHERE id = ?`, id); err != nil {
		return nil, translate("reload link", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit delete: %w", err)
	}
	return &link, nil
}
