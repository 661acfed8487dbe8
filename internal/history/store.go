package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// MaxEntries is how many searches are remembered per mode.
const MaxEntries = 5

// Entry is the raw form a search was submitted with.
type Entry map[string]string

// Store keeps the most recent searches per mode, newest first.
type Store struct {
	mu      sync.Mutex
	storage Storage
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Key is "<mode>_history", namespaced by session when one is given.
func Key(session, mode string) string {
	if session == "" {
		return mode + "_history"
	}
	return session + ":" + mode + "_history"
}

// Save prepends entry and drops the oldest once more than MaxEntries are held.
func (s *Store) Save(ctx context.Context, session, mode string, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := Key(session, mode)
	entries, err := s.load(ctx, key)
	if err != nil {
		return err
	}

	entries = append([]Entry{entry}, entries...)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	return s.storage.Set(ctx, key, data)
}

// List returns the remembered searches, most recent first. Unknown modes
// and sessions yield an empty list.
func (s *Store) List(ctx context.Context, session, mode string) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx, Key(session, mode))
}

func (s *Store) load(ctx context.Context, key string) ([]Entry, error) {
	data, err := s.storage.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history %s: %w", key, err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode history %s: %w", key, err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

func (s *Store) Close() error {
	return s.storage.Close()
}
