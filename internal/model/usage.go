package model

import "time"

// UsageEvent описывает одно обращение к короткой ссылке.
type UsageEvent struct {
	UsedAt     time.Time `json:"used_at" db:"used_at"`
	ClientHost string    `json:"client_host" db:"client_host"`
	ID         int64     `json:"id" db:"id"`
	LinkID     int64     `json:"url_id" db:"url_id"`
	ClientPort int       `json:"client_port" db:"client_port"`
}

// Client содержит сетевой адрес клиента, выполнившего переход.
// Пустые значения допустимы, если транспорт их не предоставил.
type Client struct {
	Host string
	Port int
}

// UsageStatus результат запроса статистики: либо количество, либо список событий.
type UsageStatus struct {
	Events []*UsageEvent
	Count  int
	Full   bool
}
