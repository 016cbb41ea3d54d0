// Package generator содержит реализации генераторов коротких кодов.
//
// Генератор получает уже нормализованный URL и возвращает короткий код
// либо ошибку. Повторных попыток на этом уровне нет.
package generator

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// Названия генераторов в конфигурации.
const (
	KindHash    = "hash"
	KindCounter = "counter"
	KindTinyURL = "tinyurl"
)

var (
	// ErrBadURL генератор не может сократить переданный адрес.
	ErrBadURL = errors.New("bad URL")
	// ErrCodeTooLong генератор вернул код длиннее допустимого.
	ErrCodeTooLong = errors.New("short code too long")
)

// IsRejected сообщает, что генератор отказался сократить URL.
// Остальные ошибки (сеть, redis) относятся к инфраструктуре.
func IsRejected(err error) bool {
	return errors.Is(err, ErrBadURL) || errors.Is(err, ErrCodeTooLong)
}

// Generator превращает нормализованный URL в короткий код.
type Generator interface {
	Shorten(ctx context.Context, normalizedURL string) (string, error)
}

// Func адаптер обычной функции к Generator.
type Func func(ctx context.Context, normalizedURL string) (string, error)

// Shorten вызывает f.
func (f Func) Shorten(ctx context.Context, normalizedURL string) (string, error) {
	return f(ctx, normalizedURL)
}

// maxLen ограничивает длину кода, который вернул вложенный генератор.
type maxLen struct {
	next  Generator
	limit int
}

// WithMaxLen отклоняет коды длиннее limit. При limit <= 0 возвращает g без изменений.
func WithMaxLen(g Generator, limit int) Generator {
	if limit <= 0 {
		return g
	}
	return &maxLen{next: g, limit: limit}
}

func (m *maxLen) Shorten(ctx context.Context, normalizedURL string) (string, error) {
	code, err := m.next.Shorten(ctx, normalizedURL)
	if err != nil {
		return "", err
	}
	if len(code) > m.limit {
		return "", fmt.Errorf("%w: %q exceeds %d characters", ErrCodeTooLong, code, m.limit)
	}
	return code, nil
}

// checkURL отбрасывает адреса без хоста, например "http:///".
func checkURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return ErrBadURL
	}
	return nil
}
