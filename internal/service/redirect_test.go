package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Totarae/tinyurl/internal/generator"
	"github.com/Totarae/tinyurl/internal/model"
	"github.com/Totarae/tinyurl/internal/service/mocks"
	"github.com/Totarae/tinyurl/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var client = model.Client{Host: "192.0.2.10", Port: 40000}

// Создание, повторное создание, два перехода, статистика
func TestRedirect_Scenario(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	links := newTestLinks(store, generator.NewHash())
	usage := NewUsage(store)
	redirector := NewRedirector(store, usage, zap.NewNop(), nil)

	link, err := links.Create(ctx, "http://example.com")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/", link.OriginalURL)

	_, err = links.Create(ctx, "http://example.com")
	require.ErrorIs(t, err, model.ErrDuplicate)

	for i := 0; i < 2; i++ {
		target, err := redirector.Redirect(ctx, link.ID, client)
		require.NoError(t, err)
		assert.Equal(t, "http://example.com/", target)
	}

	status, err := usage.Status(ctx, link.ID, 0, 10, false)
	require.NoError(t, err)
	assert.Equal(t, 2, status.Count)
	assert.False(t, status.Full)
}

func TestRedirect_ByCode(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	link, err := newTestLinks(store, generator.NewHash()).Create(ctx, "a.com")
	require.NoError(t, err)

	redirector := NewRedirector(store, NewUsage(store), zap.NewNop(), nil)
	target, err := redirector.RedirectByCode(ctx, link.ShortCode, client)
	require.NoError(t, err)
	assert.Equal(t, "http://a.com/", target)

	_, err = redirector.RedirectByCode(ctx, "nope", client)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestRedirect_NotFoundRecordsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	links := mocks.NewMockLinkStore(ctrl)
	usageStore := mocks.NewMockUsageStore(ctrl)
	links.EXPECT().GetLink(gomock.Any(), int64(7)).Return(nil, model.ErrNotFound)

	_, err := NewRedirector(links, NewUsage(usageStore), zap.NewNop(), nil).Redirect(context.Background(), 7, client)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestRedirect_Gone(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	links := newTestLinks(store, generator.NewHash())
	link, err := links.Create(ctx, "a.com")
	require.NoError(t, err)
	_, err = links.Delete(ctx, link.ID)
	require.NoError(t, err)

	redirector := NewRedirector(store, NewUsage(store), zap.NewNop(), nil)
	_, err = redirector.Redirect(ctx, link.ID, client)
	assert.ErrorIs(t, err, model.ErrGone)

	_, err = links.Delete(ctx, link.ID)
	require.NoError(t, err)
	_, err = redirector.Redirect(ctx, link.ID, client)
	assert.ErrorIs(t, err, model.ErrGone)

	_, err = NewUsage(store).Status(ctx, link.ID, 0, 10, false)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestRedirect_UsageFailureStillRedirects(t *testing.T) {
	ctrl := gomock.NewController(t)
	links := mocks.NewMockLinkStore(ctrl)
	usageStore := mocks.NewMockUsageStore(ctrl)

	links.EXPECT().GetLink(gomock.Any(), int64(3)).
		Return(&model.ShortLink{ID: 3, OriginalURL: "http://a.com/", ShortCode: "x"}, nil)
	usageStore.EXPECT().RecordUsage(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	core, logs := observer.New(zapcore.ErrorLevel)
	redirector := NewRedirector(links, NewUsage(usageStore), zap.New(core), nil)

	target, err := redirector.Redirect(context.Background(), 3, client)
	require.NoError(t, err)
	assert.Equal(t, "http://a.com/", target)
	assert.Equal(t, 1, logs.FilterMessage("failed to record usage").Len())
}

func TestRedirect_RecordsClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	links := mocks.NewMockLinkStore(ctrl)
	usageStore := mocks.NewMockUsageStore(ctrl)

	links.EXPECT().GetLink(gomock.Any(), int64(3)).
		Return(&model.ShortLink{ID: 3, OriginalURL: "http://a.com/"}, nil)
	usageStore.EXPECT().RecordUsage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *model.UsageEvent) error {
			assert.Equal(t, int64(3), e.LinkID)
			assert.Equal(t, "192.0.2.10", e.ClientHost)
			assert.Equal(t, 40000, e.ClientPort)
			assert.False(t, e.UsedAt.IsZero())
			return nil
		})

	_, err := NewRedirector(links, NewUsage(usageStore), zap.NewNop(), nil).Redirect(context.Background(), 3, client)
	require.NoError(t, err)
}

func TestRedirect_LookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	links := mocks.NewMockLinkStore(ctrl)
	links.EXPECT().GetLink(gomock.Any(), int64(1)).Return(nil, model.ErrStorageUnavailable)

	_, err := NewRedirector(links, NewUsage(mocks.NewMockUsageStore(ctrl)), zap.NewNop(), nil).
		Redirect(context.Background(), 1, client)
	assert.ErrorIs(t, err, model.ErrStorageUnavailable)
}
