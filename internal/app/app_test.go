package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Totarae/tinyurl/internal/config"
	"github.com/Totarae/tinyurl/internal/generator"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerAddress:    ":0",
		BaseURL:          "http://localhost:8000",
		Generator:        generator.KindHash,
		RedisKey:         "tinyurl:seq",
		GeneratorTimeout: time.Second,
		ShortCodeMaxLen:  30,
		Mode:             config.ModeMemory,
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	_, err = NewLogger("loud")
	assert.Error(t, err)
}

func TestNew_Memory(t *testing.T) {
	a, err := New(context.Background(), testConfig(), zap.NewNop())
	require.NoError(t, err)
	defer a.Close()

	srv := httptest.NewServer(a.HTTPHandler())
	defer srv.Close()

	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}

	resp, err := client.Post(srv.URL+"/api/v1/tinyurl/", "application/json", strings.NewReader(`{"url":"go.dev"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = client.Get(srv.URL + "/api/v1/tinyurl/1")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, "http://go.dev/", resp.Header.Get("Location"))
}

func TestNew_SQLite(t *testing.T) {
	cfg := testConfig()
	cfg.Mode = config.ModeSQLite
	cfg.SQLitePath = filepath.Join(t.TempDir(), "tinyurl.db")

	a, err := New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	link, err := a.Services.Links.Create(context.Background(), "go.dev")
	require.NoError(t, err)
	assert.Equal(t, int64(1), link.ID)
	assert.True(t, a.Services.Health.Check(context.Background()).Healthy())
	require.NoError(t, a.Close())
}

func TestNew_Counter(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.Generator = generator.KindCounter
	cfg.RedisAddr = mr.Addr()

	a, err := New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer a.Close()

	first, err := a.Services.Links.Create(context.Background(), "a.com")
	require.NoError(t, err)
	second, err := a.Services.Links.Create(context.Background(), "b.com")
	require.NoError(t, err)
	assert.NotEqual(t, first.ShortCode, second.ShortCode)
}

func TestNew_Errors(t *testing.T) {
	cfg := testConfig()
	cfg.Generator = "random"
	_, err := New(context.Background(), cfg, zap.NewNop())
	assert.ErrorContains(t, err, "unknown generator")

	cfg = testConfig()
	cfg.Generator = generator.KindCounter
	_, err = New(context.Background(), cfg, zap.NewNop())
	assert.ErrorIs(t, err, generator.ErrEmptyRedisAddress)
}

func TestGRPCServer(t *testing.T) {
	a, err := New(context.Background(), testConfig(), zap.NewNop())
	require.NoError(t, err)
	defer a.Close()

	info := a.GRPCServer().GetServiceInfo()
	assert.Contains(t, info, "tinyurl.v1.Shortener")
}
