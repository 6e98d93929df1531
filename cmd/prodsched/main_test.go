package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenHistory_UnopenableStoreIsDisabled(t *testing.T) {
	// A regular file where the db directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	svc, database := openHistory(filepath.Join(blocker, "history.db"), logger)
	assert.Nil(t, svc)
	assert.Nil(t, database)
	assert.Contains(t, logs.String(), "ingest history disabled")
}

func TestOpenHistory_EmptyPathIsDisabled(t *testing.T) {
	var logs bytes.Buffer
	svc, database := openHistory("", slog.New(slog.NewTextHandler(&logs, nil)))
	assert.Nil(t, svc)
	assert.Nil(t, database)
	assert.Contains(t, logs.String(), "no database path")
}

func TestOpenHistory_OpensStore(t *testing.T) {
	svc, database := openHistory(filepath.Join(t.TempDir(), "history.db"), slog.Default())
	require.NotNil(t, svc)
	require.NotNil(t, database)
	defer database.Close()

	recs, err := svc.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, recs)
}
