package generator

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTinyURLEndpoint публичный API tinyurl.com.
const DefaultTinyURLEndpoint = "https://tinyurl.com/api-create.php"

// TinyURL делегирует сокращение внешнему сервису tinyurl.
// Кодом считается полный короткий адрес, который вернул сервис.
type TinyURL struct {
	client   *http.Client
	endpoint string
}

// NewTinyURL создаёт клиента с заданным таймаутом.
func NewTinyURL(endpoint string, timeout time.Duration) *TinyURL {
	if endpoint == "" {
		endpoint = DefaultTinyURLEndpoint
	}
	return &TinyURL{
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
	}
}

// Shorten запрашивает короткий адрес у внешнего сервиса.
func (t *TinyURL) Shorten(ctx context.Context, normalizedURL string) (string, error) {
	if err := checkURL(normalizedURL); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.endpoint+"?url="+url.QueryEscape(normalizedURL), nil)
	if err != nil {
		return "", fmt.Errorf("build tinyurl request: %w", err)
	}
	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("tinyurl request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1024))
	if err != nil {
		return "", fmt.Errorf("read tinyurl response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: tinyurl responded %d", ErrBadURL, resp.StatusCode)
	}

	short := strings.TrimSpace(string(body))
	if !strings.HasPrefix(short, "http") {
		return "", fmt.Errorf("%w: unexpected tinyurl response %q", ErrBadURL, short)
	}
	return short, nil
}
