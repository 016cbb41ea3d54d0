// Package repositories содержит реализации хранилищ поверх PostgreSQL.
package repositories

import (
	"context"
	"fmt"

	"github.com/Totarae/tinyurl/internal/database"
	"github.com/Totarae/tinyurl/internal/model"
	"github.com/jackc/pgx/v5"
)

const linkColumns = `id, original_url, short_code, created_at, deleted`

// LinkRepository хранилище коротких ссылок в PostgreSQL.
type LinkRepository struct {
	DB *database.DB
}

// NewLinkRepository создаёт новый экземпляр LinkRepository.
func NewLinkRepository(db *database.DB) *LinkRepository {
	return &LinkRepository{DB: db}
}

// CreateLink сохраняет ссылку. Уникальность проверяет ограничение таблицы.
func (r *LinkRepository) CreateLink(ctx context.Context, link *model.ShortLink) error {
	query := `INSERT INTO short_links (original_url, short_code, created_at)
              VALUES ($1, $2, $3)
              RETURNING id`

	err := r.DB.Pool.QueryRow(ctx, query, link.OriginalURL, link.ShortCode, link.CreatedAt).Scan(&link.ID)
	if err != nil {
		return translate("insert link", err)
	}
	return nil
}

// CreateLinks сохраняет список ссылок в рамках транзакции.
func (r *LinkRepository) CreateLinks(ctx context.Context, links []*model.ShortLink) error {
	tx, err := r.DB.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO short_links (original_url, short_code, created_at) VALUES ($1, $2, $3) RETURNING id`
	for _, link := range links {
		err := tx.QueryRow(ctx, query, link.OriginalURL, link.ShortCode, link.CreatedAt).Scan(&link.ID)
		if err != nil {
			return translate("insert batch link", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return translate("commit batch", err)
	}
	return nil
}

// GetLink извлекает ссылку по ID.
func (r *LinkRepository) GetLink(ctx context.Context, id int64) (*model.ShortLink, error) {
	return r.getOne(ctx, `SELECT `+linkColumns+` FROM short_links WHERE id = $1`, id)
}

// GetLinkByCode извлекает ссылку по короткому коду.
func (r *LinkRepository) GetLinkByCode(ctx context.Context, code string) (*model.ShortLink, error) {
	return r.getOne(ctx, `SELECT `+linkColumns+` FROM short_links WHERE short_code = $1`, code)
}

// ListLinks возвращает страницу ссылок по возрастанию ID.
func (r *LinkRepository) ListLinks(ctx context.Context, offset, limit int) ([]*model.ShortLink, error) {
	query := `SELECT ` + linkColumns + ` FROM short_links ORDER BY id OFFSET $1 LIMIT $2`
	rows, err := r.DB.Pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	links, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[model.ShortLink])
	if err != nil {
		return nil, fmt.Errorf("failed to scan links: %w", err)
	}
	return links, nil
}

// MarkDeleted помечает ссылку как удалённую и возвращает её.
func (r *LinkRepository) MarkDeleted(ctx context.Context, id int64) (*model.ShortLink, error) {
	return r.getOne(ctx, `UPDATE short_links SET deleted = TRUE WHERE id = $1 RETURNING `+linkColumns, id)
}

// Ping проверяет доступность базы данных.
func (r *LinkRepository) Ping(ctx context.Context) error {
	return r.DB.Ping(ctx)
}

func (r *LinkRepository) getOne(ctx context.Context, query string, arg any) (*model.ShortLink, error) {
	rows, err := r.DB.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, translate("query link", err)
	}
	link, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.ShortLink])
	if err != nil {
		return nil, translate("scan link", err)
	}
	return link, nil
}
