package storage

import (
	"github.com/loganlabb-arch/Actual-alarm/internal/model"
)

// AlarmRepo provides operations for the AlarmConfig singleton.
type AlarmRepo struct {
	db *DB
}

// NewAlarmRepo creates a new alarm repository.
func NewAlarmRepo(db *DB) *AlarmRepo {
	return &AlarmRepo{db: db}
}

// Get retrieves the alarm record, creating and persisting defaults if
// it doesn't exist yet. Loading twice without an intervening Update
// yields identical records.
func (r *AlarmRepo) Get() (*model.AlarmConfig, error) {
	config := &model.AlarmConfig{}
	err := r.db.Get(model.KeyAlarm, config)
	if err == nil {
		return config, nil
	}

	if !IsErrKeyNotFound(err) {
		return nil, err
	}

	config = model.NewAlarmConfig()
	if err := r.db.Set(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Update stores the alarm record as one whole write.
func (r *AlarmRepo) Update(config *model.AlarmConfig) error {
	return r.db.Set(config)
}
