package alarm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loganlabb-arch/Actual-alarm/internal/errors"
	"github.com/loganlabb-arch/Actual-alarm/internal/model"
)

// fakeStore returns configs in order, repeating the last one once the
// script runs out.
type fakeStore struct {
	configs []*model.AlarmConfig
	idx     int
}

func (s *fakeStore) Get() (*model.AlarmConfig, error) {
	if s.idx < len(s.configs)-1 {
		cfg := s.configs[s.idx]
		s.idx++
		return cfg, nil
	}
	return s.configs[len(s.configs)-1], nil
}

func enabledConfig() *model.AlarmConfig {
	cfg := model.NewAlarmConfig()
	cfg.Enabled = true
	return cfg
}

func disabledConfig() *model.AlarmConfig {
	cfg := model.NewAlarmConfig()
	cfg.Enabled = false
	return cfg
}

func newTestService(store ConfigSource) (*Service, *int, *int) {
	cli, _ := testCLI()
	svc := NewService(store, &fakeOpener{}, &scriptedReader{}, cli)

	waits := new(int)
	cycles := new(int)
	svc.wait = func(ctx context.Context, target time.Time) error {
		*waits++
		return nil
	}
	svc.runCycle = func(ctx context.Context, cfg *model.AlarmConfig) (Outcome, error) {
		*cycles++
		return Outcome{DismissedAt: time.Now()}, nil
	}
	return svc, waits, cycles
}

func TestServiceDisabledAlarmReturnsImmediately(t *testing.T) {
	svc, waits, cycles := newTestService(&fakeStore{configs: []*model.AlarmConfig{disabledConfig()}})

	err := svc.Run(context.Background(), disabledConfig())
	require.NoError(t, err)
	assert.Zero(t, *waits)
	assert.Zero(t, *cycles)
}

func TestServiceUnparsableStoredTimeIsFatal(t *testing.T) {
	svc, waits, _ := newTestService(&fakeStore{configs: []*model.AlarmConfig{enabledConfig()}})

	cfg := enabledConfig()
	cfg.AlarmTime = "25:99"
	err := svc.Run(context.Background(), cfg)

	require.Error(t, err)
	assert.True(t, errors.IsUserError(err))
	assert.Zero(t, *waits)
}

func TestServiceExitsWhenDisabledDuringWait(t *testing.T) {
	store := &fakeStore{configs: []*model.AlarmConfig{disabledConfig()}}
	svc, waits, cycles := newTestService(store)

	err := svc.Run(context.Background(), enabledConfig())
	require.NoError(t, err)
	assert.Equal(t, 1, *waits)
	assert.Zero(t, *cycles, "cycle must not run once the alarm is disabled")
}

func TestServiceExitsWhenDisabledAfterCycle(t *testing.T) {
	store := &fakeStore{configs: []*model.AlarmConfig{
		enabledConfig(),  // checkpoint after wait
		disabledConfig(), // checkpoint after cycle
	}}
	svc, waits, cycles := newTestService(store)

	err := svc.Run(context.Background(), enabledConfig())
	require.NoError(t, err)
	assert.Equal(t, 1, *waits)
	assert.Equal(t, 1, *cycles)
}

func TestServiceWaitErrorPropagates(t *testing.T) {
	store := &fakeStore{configs: []*model.AlarmConfig{enabledConfig()}}
	svc, _, cycles := newTestService(store)
	svc.wait = func(ctx context.Context, target time.Time) error {
		return context.Canceled
	}

	err := svc.Run(context.Background(), enabledConfig())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, *cycles)
}

func TestServiceCycleErrorPropagates(t *testing.T) {
	store := &fakeStore{configs: []*model.AlarmConfig{enabledConfig()}}
	svc, _, _ := newTestService(store)
	svc.runCycle = func(ctx context.Context, cfg *model.AlarmConfig) (Outcome, error) {
		return Outcome{}, errors.ErrInterrupted
	}

	err := svc.Run(context.Background(), enabledConfig())
	assert.ErrorIs(t, err, errors.ErrInterrupted)
}
