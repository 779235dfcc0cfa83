package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loganlabb-arch/Actual-alarm/internal/model"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGetCreatesDefaultsOnFirstLoad(t *testing.T) {
	db := openTestDB(t)
	repo := NewAlarmRepo(db)

	cfg, err := repo.Get()
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, model.DefaultAlarmTime, cfg.AlarmTime)
	assert.Equal(t, model.DefaultTriggerURL, cfg.TriggerURL)
	assert.Equal(t, model.DefaultConfirmationPhrase, cfg.ConfirmationPhrase)

	// Defaults must have been persisted, not just returned.
	exists, err := db.Exists(model.KeyAlarm)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGetIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	repo := NewAlarmRepo(db)

	first, err := repo.Get()
	require.NoError(t, err)
	second, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestUpdateRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewAlarmRepo(db)

	cfg, err := repo.Get()
	require.NoError(t, err)

	cfg.Enabled = true
	cfg.AlarmTime = "06:45"
	cfg.TriggerURL = "https://example.com/wakeup"
	cfg.ConfirmationPhrase = "Up and at them."
	cfg.InitialWaitSecs = 120
	cfg.ConfirmTimeoutSecs = 30
	require.NoError(t, repo.Update(cfg))

	got, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestGetMissingKey(t *testing.T) {
	db := openTestDB(t)

	err := db.Get("nonexistent", &model.AlarmConfig{})
	require.Error(t, err)
	assert.True(t, IsErrKeyNotFound(err))
}
