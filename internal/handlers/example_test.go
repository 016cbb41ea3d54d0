package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/Totarae/tinyurl/internal/generator"
	"github.com/Totarae/tinyurl/internal/handlers"
	"github.com/Totarae/tinyurl/internal/service"
	"github.com/Totarae/tinyurl/internal/storage"
	"go.uber.org/zap"
)

// ExampleHandler_CreateLink демонстрирует создание короткой ссылки.
func ExampleHandler_CreateLink() {
	store := storage.NewMemory()
	svc := service.New(store, store, generator.NewHash(), zap.NewNop(), nil)
	h := handlers.NewHandler(svc, "http://localhost:8000", zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tinyurl/", strings.NewReader(`{"url":"yandex.ru"}`))
	rec := httptest.NewRecorder()
	h.CreateLink(rec, req)

	resp := rec.Result()
	defer resp.Body.Close()

	var result map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&result)

	fmt.Println(resp.StatusCode)
	fmt.Println(result["original_url"])
	fmt.Println(strings.HasPrefix(result["short_url"].(string), "http://localhost:8000/"))

	// Output:
	// 201
	// http://yandex.ru/
	// true
}
