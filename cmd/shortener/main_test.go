package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRun_StopsOnCancel(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("SQLITE_PATH", "")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(200 * time.Millisecond)
		cancel()
	}()

	err := run(ctx, []string{"-a", "127.0.0.1:0", "-g", "127.0.0.1:0", "-log-level", "error"})
	assert.NoError(t, err)
}

func TestRun_InvalidConfig(t *testing.T) {
	err := run(context.Background(), []string{"-generator", "dice"})
	assert.ErrorContains(t, err, "unknown generator")

	err = run(context.Background(), []string{"-unknown-flag"})
	assert.Error(t, err)
}
