package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/Totarae/tinyurl/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("SQLITE_PATH", "")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestShortenctl_Lifecycle(t *testing.T) {
	db := "--sqlite=" + filepath.Join(t.TempDir(), "ctl.db")

	out, err := execute(t, "migrate", "up", db)
	require.NoError(t, err)
	assert.Contains(t, out, "migrations applied")

	out, err = execute(t, "create", db, "go.dev", "https://example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "original_url: http://go.dev/")
	assert.Contains(t, out, "original_url: https://example.com/")

	out, err = execute(t, "list", db, "--max-size=1", "--offset=1")
	require.NoError(t, err)
	assert.Contains(t, out, "https://example.com/")
	assert.NotContains(t, out, "go.dev")

	_, err = execute(t, "create", db, "go.dev")
	assert.ErrorIs(t, err, model.ErrDuplicate)

	_, err = execute(t, "usage", db, "1")
	assert.ErrorIs(t, err, model.ErrNotFound)

	out, err = execute(t, "delete", db, "1")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted: true")

	out, err = execute(t, "ping", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Healthy")
}

func TestShortenctl_Errors(t *testing.T) {
	_, err := execute(t, "migrate", "up")
	assert.ErrorIs(t, err, errNoDatabase)

	_, err = execute(t, "migrate", "down", "--sqlite=x.db")
	assert.Error(t, err)

	_, err = execute(t, "delete", "abc")
	assert.ErrorContains(t, err, "invalid url_id")

	_, err = execute(t, "create")
	assert.Error(t, err)
}

func TestConfigArgs(t *testing.T) {
	g := &globalFlags{sqlite: "a.db", generator: "hash"}
	assert.Equal(t, []string{"-f", "a.db", "-generator", "hash"}, g.configArgs())
}
