package storage

import "time"

// AddMessage appends one conversation turn to the session history, keeping
// only the most recent messageHistoryLimit entries.
func (s *Storage) AddMessage(sessionID, role, content string) error {
	record, err := s.getOrCreateSessionRecord(sessionID)
	if err != nil {
		return err
	}

	record.History = append(record.History, MessageRecord{
		Role:     role,
		Content:  content,
		Datetime: time.Now(),
	})
	if len(record.History) > messageHistoryLimit {
		record.History = record.History[len(record.History)-messageHistoryLimit:]
	}

	return s.ds.Set(sessionKey(sessionID), record)
}

// History returns the session's stored messages, oldest first.
func (s *Storage) History(sessionID string) ([]MessageRecord, error) {
	record, err := s.getOrCreateSessionRecord(sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]MessageRecord, len(record.History))
	copy(out, record.History)
	return out, nil
}

// ClearHistory drops the session's stored messages.
func (s *Storage) ClearHistory(sessionID string) error {
	record, err := s.getOrCreateSessionRecord(sessionID)
	if err != nil {
		return err
	}
	record.History = nil
	return s.ds.Set(sessionKey(sessionID), record)
}
