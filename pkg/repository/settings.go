package repository

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/promptdeck/promptdeck/pkg/domain/model"
	"github.com/promptdeck/promptdeck/pkg/repository/kv"
	"github.com/promptdeck/promptdeck/pkg/utils/errutil"
)

type settingsRepository struct {
	mu    sync.Mutex
	store kv.Store
}

func (r *settingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, ok, err := r.store.Get(ctx, settingsKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read settings")
	}
	if !ok {
		return nil, nil
	}

	var settings model.Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return nil, goerr.Wrap(err, "failed to decode stored settings")
	}
	return &settings, nil
}

func (r *settingsRepository) Put(ctx context.Context, settings *model.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(settings)
	if err != nil {
		return goerr.Wrap(err, "failed to encode settings")
	}
	if err := r.store.Set(ctx, settingsKey, string(data)); err != nil {
		_ = errutil.Handle(ctx, goerr.Wrap(err, "failed to persist settings"), "settings write lost")
	}
	return nil
}
