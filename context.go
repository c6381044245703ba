package telexide

import (
	"context"
	"sync"

	"github.com/rmrfus/telexide/api"
)

// Context is the per-invocation handle passed to every callback. The
// driver creates one per update-processing cycle; it is valid for the
// duration of that cycle.
type Context struct {
	context.Context

	// API is the Bot API client of the bot that received the update.
	API *api.Client

	// Raw is the undecoded JSON payload of the update being processed.
	// Nil for invocations not tied to an update, such as scheduled jobs.
	Raw api.RawUpdate

	// Data is the bot-lifetime shared key-value store.
	Data *DataStore
}

func newContext(ctx context.Context, client *api.Client, data *DataStore, raw api.RawUpdate) *Context {
	return &Context{
		Context: ctx,
		API:     client,
		Raw:     raw,
		Data:    data,
	}
}

// DataStore is a mutex-guarded key-value store shared by all callbacks
// of one bot. It lives for the lifetime of the bot.
type DataStore struct {
	mu sync.RWMutex
	m  map[string]any
}

// NewDataStore creates an empty DataStore.
func NewDataStore() *DataStore {
	return &DataStore{m: make(map[string]any)}
}

// Get returns the value stored under key, or false if none.
func (d *DataStore) Get(key string) (any, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	v, ok := d.m[key]
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (d *DataStore) Set(key string, value any) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.m[key] = value
}

// Delete removes key from the store.
func (d *DataStore) Delete(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.m, key)
}
