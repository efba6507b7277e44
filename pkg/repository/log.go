package repository

import (
	"context"
	"sync"

	"github.com/promptdeck/promptdeck/pkg/domain/model"
	"github.com/promptdeck/promptdeck/pkg/repository/kv"
)

type logRepository struct {
	mu    sync.Mutex
	store kv.Store
}

func (r *logRepository) Append(ctx context.Context, result *model.ExecutionResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	logs, err := loadList[*model.ExecutionResult](ctx, r.store, logsKey)
	if err != nil {
		return err
	}

	logs = append([]*model.ExecutionResult{result.Clone()}, logs...)
	if len(logs) > maxLogs {
		logs = logs[:maxLogs]
	}

	saveList(ctx, r.store, logsKey, logs)
	return nil
}

func (r *logRepository) List(ctx context.Context) ([]*model.ExecutionResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return loadList[*model.ExecutionResult](ctx, r.store, logsKey)
}

func (r *logRepository) ReplaceAll(ctx context.Context, results []*model.ExecutionResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := make([]*model.ExecutionResult, 0, len(results))
	for _, result := range results {
		copied = append(copied, result.Clone())
	}
	if len(copied) > maxLogs {
		copied = copied[:maxLogs]
	}

	saveList(ctx, r.store, logsKey, copied)
	return nil
}
