package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Totarae/tinyurl/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func link(url, code string) *model.ShortLink {
	return &model.ShortLink{OriginalURL: url, ShortCode: code, CreatedAt: time.Now().UTC()}
}

func TestDriverFor(t *testing.T) {
	assert.Equal(t, "libsql", driverFor("libsql://db-org.turso.io?authToken=x"))
	assert.Equal(t, "libsql", driverFor("wss://db-org.turso.io"))
	assert.Equal(t, "sqlite", driverFor("data/tinyurl.db"))
	assert.Equal(t, "sqlite", driverFor(":memory:"))
}

func TestStore_LinkLifecycle(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)

	a := link("http://a.com/", "a")
	require.NoError(t, s.CreateLink(ctx, a))
	assert.Equal(t, int64(1), a.ID)

	got, err := s.GetLink(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "http://a.com/", got.OriginalURL)
	assert.Equal(t, "a", got.ShortCode)
	assert.False(t, got.Deleted)
	assert.WithinDuration(t, a.CreatedAt, got.CreatedAt, time.Second)

	byCode, err := s.GetLinkByCode(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, a.ID, byCode.ID)

	_, err = s.GetLink(ctx, 42)
	assert.ErrorIs(t, err, model.ErrNotFound)

	assert.ErrorIs(t, s.CreateLink(ctx, link("http://a.com/", "zz")), model.ErrDuplicate)

	deleted, err := s.MarkDeleted(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)
	deleted, err = s.MarkDeleted(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)

	_, err = s.MarkDeleted(ctx, 42)
	assert.ErrorIs(t, err, model.ErrNotFound)

	// удалённая ссылка всё ещё занимает адрес
	assert.ErrorIs(t, s.CreateLink(ctx, link("http://a.com/", "b")), model.ErrDuplicate)
}

func TestStore_CreateLinksAllOrNothing(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)
	require.NoError(t, s.CreateLink(ctx, link("http://b.com/", "b")))

	err := s.CreateLinks(ctx, []*model.ShortLink{link("http://a.com/", "a"), link("http://b.com/", "x")})
	assert.ErrorIs(t, err, model.ErrDuplicate)

	all, err := s.ListLinks(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	batch := []*model.ShortLink{link("http://c.com/", "c"), link("http://d.com/", "d")}
	require.NoError(t, s.CreateLinks(ctx, batch))
	assert.NotZero(t, batch[0].ID)
	assert.NotEqual(t, batch[0].ID, batch[1].ID)

	page, err := s.ListLinks(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "c", page[0].ShortCode)
	assert.Equal(t, "d", page[1].ShortCode)
}

func TestStore_Usage(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)
	a := link("http://a.com/", "a")
	require.NoError(t, s.CreateLink(ctx, a))

	for i := 0; i < 4; i++ {
		ev := &model.UsageEvent{LinkID: a.ID, UsedAt: time.Now().UTC(), ClientHost: "127.0.0.1", ClientPort: 1000 + i}
		require.NoError(t, s.RecordUsage(ctx, ev))
		assert.NotZero(t, ev.ID)
	}

	n, err := s.CountUsage(ctx, a.ID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	n, err = s.CountUsage(ctx, a.ID, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = s.CountUsage(ctx, a.ID+1, 0, 10)
	require.NoError(t, err)
	assert.Zero(t, n)

	events, err := s.ListUsage(ctx, a.ID, 1, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, 1001, events[0].ClientPort)
	assert.Equal(t, "127.0.0.1", events[0].ClientHost)
	assert.False(t, events[0].UsedAt.IsZero())

	err = s.RecordUsage(ctx, &model.UsageEvent{LinkID: 999, UsedAt: time.Now().UTC()})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestStore_FilePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tinyurl.db")

	s, err := Open(ctx, path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, s.CreateLink(ctx, link("http://a.com/", "a")))
	require.NoError(t, s.Close())

	s, err = Open(ctx, path, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	got, err := s.GetLinkByCode(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "http://a.com/", got.OriginalURL)
	require.NoError(t, s.Ping(ctx))
}
