package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/keshon/datastore"
)

const messageHistoryLimit int = 50

// Storage persists per-session state (settings, message history) and global
// prompt presets in a JSON datastore. Safe for concurrent use; the underlying
// store serializes access.
type Storage struct {
	ds *datastore.DataStore
	// cancel stops the store's autosave goroutine; Close waits on it, so the
	// context must be cancelled before closing.
	cancel context.CancelFunc
}

// MessageRecord is one stored conversation turn.
type MessageRecord struct {
	Role     string    `json:"role"`
	Content  string    `json:"content"`
	Datetime time.Time `json:"datetime"`
}

// PromptPreset is a named reusable prompt.
type PromptPreset struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Record is the per-session document.
type Record struct {
	Config  map[string]string `json:"config"`
	History []MessageRecord   `json:"history"`
}

func New(filePath string) (*Storage, error) {
	ctx, cancel := context.WithCancel(context.Background())
	ds, err := datastore.New(ctx, filePath)
	if err != nil {
		cancel()
		return nil, err
	}
	return &Storage{ds: ds, cancel: cancel}, nil
}

func (s *Storage) Close() error {
	s.cancel()
	return s.ds.Close()
}

// getOrCreateSessionRecord loads the session's record, or hands back an empty
// one for a session not seen before. Nothing is persisted until the first
// write.
func (s *Storage) getOrCreateSessionRecord(sessionID string) (*Record, error) {
	var record Record
	found, err := s.ds.Get(sessionKey(sessionID), &record)
	if err != nil {
		return nil, fmt.Errorf("load session record: %w", err)
	}
	if !found {
		return &Record{Config: make(map[string]string)}, nil
	}
	if record.Config == nil {
		record.Config = make(map[string]string)
	}
	return &record, nil
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}
