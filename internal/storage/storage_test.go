package storage

import (
	"fmt"
	"path/filepath"
	"testing"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "datastore.json"))
	if err != nil {
		t.Fatalf("storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestConfigRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	if _, ok, err := s.GetConfigValue("sess", "model"); err != nil || ok {
		t.Fatalf("unexpected value before set: ok=%v err=%v", ok, err)
	}
	if err := s.SetConfigValue("sess", "model", "gpt-4o-mini"); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := s.GetConfigValue("sess", "model")
	if err != nil || !ok || value != "gpt-4o-mini" {
		t.Fatalf("get: value=%q ok=%v err=%v", value, ok, err)
	}

	cfg, err := s.GetConfig("sess")
	if err != nil || len(cfg) != 1 {
		t.Fatalf("config map: %v err=%v", cfg, err)
	}

	// Sessions must not leak into each other.
	other, err := s.GetConfig("other")
	if err != nil || len(other) != 0 {
		t.Fatalf("session isolation broken: %v err=%v", other, err)
	}
}

func TestHistoryAppendsAndTrims(t *testing.T) {
	s := newTestStorage(t)

	for i := 0; i < messageHistoryLimit+5; i++ {
		if err := s.AddMessage("sess", "user", fmt.Sprintf("msg %d", i)); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	history, err := s.History("sess")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != messageHistoryLimit {
		t.Fatalf("expected trim to %d, got %d", messageHistoryLimit, len(history))
	}
	if history[len(history)-1].Content != fmt.Sprintf("msg %d", messageHistoryLimit+4) {
		t.Fatalf("latest message lost: %+v", history[len(history)-1])
	}
}

func TestClearHistory(t *testing.T) {
	s := newTestStorage(t)

	if err := s.AddMessage("sess", "user", "hello"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.ClearHistory("sess"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	history, err := s.History("sess")
	if err != nil || len(history) != 0 {
		t.Fatalf("history not cleared: %v err=%v", history, err)
	}
}

func TestCloseAndReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datastore.json")

	s, err := New(path)
	if err != nil {
		t.Fatalf("storage: %v", err)
	}
	if err := s.SetConfigValue("sess", "model", "gpt-4o-mini"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.AddMessage("sess", "user", "hello"); err != nil {
		t.Fatalf("add: %v", err)
	}
	// Close must cancel the store's autosave goroutine and return promptly.
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s, err = New(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	value, ok, err := s.GetConfigValue("sess", "model")
	if err != nil || !ok || value != "gpt-4o-mini" {
		t.Fatalf("config lost across reopen: value=%q ok=%v err=%v", value, ok, err)
	}
	history, err := s.History("sess")
	if err != nil || len(history) != 1 || history[0].Content != "hello" {
		t.Fatalf("history lost across reopen: %v err=%v", history, err)
	}
}

func TestPromptPresets(t *testing.T) {
	s := newTestStorage(t)

	if err := s.AddPrompt("summarize", "Summarize the following text"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.AddPrompt("translate", "Translate to French"); err != nil {
		t.Fatalf("add: %v", err)
	}
	// Same name replaces, not duplicates.
	if err := s.AddPrompt("summarize", "Summarize briefly"); err != nil {
		t.Fatalf("replace: %v", err)
	}

	presets, err := s.Prompts()
	if err != nil {
		t.Fatalf("prompts: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(presets))
	}
	for _, p := range presets {
		if p.Name == "summarize" && p.Text != "Summarize briefly" {
			t.Fatalf("replace did not stick: %+v", p)
		}
	}
}
