package model

import "time"

// ShortLink представляет сохранённое сопоставление короткого кода и оригинального URL.
type ShortLink struct {
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	OriginalURL string    `json:"original_url" db:"original_url"`
	ShortCode   string    `json:"short_code" db:"short_code"`
	ID          int64     `json:"id" db:"id"`
	Deleted     bool      `json:"deleted" db:"deleted"`
}
