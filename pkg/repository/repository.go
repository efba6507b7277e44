// Package repository implements the entity stores on top of the key-value
// primitive: each store serializes its full entity list to JSON under a
// fixed key. Read-modify-write sequences are guarded per store because the
// HTTP server runs handlers concurrently.
package repository

import (
	"context"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/promptdeck/promptdeck/pkg/domain/interfaces"
	"github.com/promptdeck/promptdeck/pkg/repository/kv"
	"github.com/promptdeck/promptdeck/pkg/utils/errutil"
)

// Fixed storage keys
const (
	agentsKey        = "agents"
	logsKey          = "logs"
	conversationsKey = "conversations"
	settingsKey      = "settings"
)

// Retention caps; the oldest entries are dropped silently on overflow
const (
	maxLogs          = 100
	maxConversations = 50
)

// Repository is the KV-backed implementation of interfaces.Repository
type Repository struct {
	store        kv.Store
	agent        *agentRepository
	log          *logRepository
	conversation *conversationRepository
	settings     *settingsRepository
}

var _ interfaces.Repository = &Repository{}

// New builds entity stores over the given KV backend
func New(store kv.Store) *Repository {
	return &Repository{
		store:        store,
		agent:        &agentRepository{store: store},
		log:          &logRepository{store: store},
		conversation: &conversationRepository{store: store},
		settings:     &settingsRepository{store: store},
	}
}

func (r *Repository) Agent() interfaces.AgentRepository {
	return r.agent
}

func (r *Repository) Log() interfaces.LogRepository {
	return r.log
}

func (r *Repository) Conversation() interfaces.ConversationRepository {
	return r.conversation
}

func (r *Repository) Settings() interfaces.SettingsRepository {
	return r.settings
}

func (r *Repository) Close() error {
	return r.store.Close()
}

// loadList reads and decodes a JSON list under a fixed key. An absent key
// yields an empty list.
func loadList[T any](ctx context.Context, store kv.Store, key string) ([]T, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read from store", goerr.V("key", key))
	}
	if !ok {
		return nil, nil
	}

	var list []T
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, goerr.Wrap(err, "failed to decode stored list", goerr.V("key", key))
	}
	return list, nil
}

// saveList encodes and writes a JSON list under a fixed key. A failed write
// is logged and swallowed: in-memory results returned to the caller run
// ahead of persisted state, an accepted risk for this durability class.
func saveList[T any](ctx context.Context, store kv.Store, key string, list []T) {
	data, err := json.Marshal(list)
	if err != nil {
		_ = errutil.Handle(ctx, goerr.Wrap(err, "failed to encode list for store", goerr.V("key", key)), "store write skipped")
		return
	}
	if err := store.Set(ctx, key, string(data)); err != nil {
		_ = errutil.Handle(ctx, goerr.Wrap(err, "failed to persist list", goerr.V("key", key)), "store write lost")
	}
}
