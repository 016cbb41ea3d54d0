package service

import (
	"context"

	"github.com/Totarae/tinyurl/internal/model"
)

// HealthReporter проверяет доступность хранилища ссылок.
type HealthReporter struct {
	store LinkStore
}

// NewHealthReporter создаёт HealthReporter.
func NewHealthReporter(store LinkStore) *HealthReporter {
	return &HealthReporter{store: store}
}

// Check никогда не возвращает ошибку: сбой попадает в DBStatus.
func (h *HealthReporter) Check(ctx context.Context) model.Health {
	return model.NewHealth(h.store.Ping(ctx))
}
