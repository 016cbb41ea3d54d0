package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	base62Alphabet   = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	redisPingTimeout = 5 * time.Second
)

// ErrEmptyRedisAddress адрес redis не задан.
var ErrEmptyRedisAddress = errors.New("redis address is empty")

// Counter выдаёт коды из общего счётчика в redis (INCR + base62).
// Коды короткие и не повторяются между экземплярами сервиса.
type Counter struct {
	client *redis.Client
	key    string
}

// NewCounter создаёт генератор поверх готового клиента redis.
func NewCounter(client *redis.Client, key string) *Counter {
	return &Counter{client: client, key: key}
}

// NewRedisClient подключается к redis и проверяет соединение.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	if addr == "" {
		return nil, ErrEmptyRedisAddress
	}
	client := redis.NewClient(&redis.Options{Addr: addr})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}

// Shorten увеличивает счётчик и кодирует новое значение.
func (c *Counter) Shorten(ctx context.Context, normalizedURL string) (string, error) {
	if err := checkURL(normalizedURL); err != nil {
		return "", err
	}
	n, err := c.client.Incr(ctx, c.key).Result()
	if err != nil {
		return "", fmt.Errorf("redis incr %s: %w", c.key, err)
	}
	return encodeBase62(uint64(n)), nil
}

func encodeBase62(n uint64) string {
	if n == 0 {
		return base62Alphabet[:1]
	}
	var buf [11]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = base62Alphabet[n%62]
		n /= 62
	}
	return string(buf[i:])
}
