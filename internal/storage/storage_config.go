package storage

// SetConfigValue stores one session setting.
func (s *Storage) SetConfigValue(sessionID, key, value string) error {
	record, err := s.getOrCreateSessionRecord(sessionID)
	if err != nil {
		return err
	}
	record.Config[key] = value
	return s.ds.Set(sessionKey(sessionID), record)
}

// GetConfigValue returns one session setting.
func (s *Storage) GetConfigValue(sessionID, key string) (string, bool, error) {
	record, err := s.getOrCreateSessionRecord(sessionID)
	if err != nil {
		return "", false, err
	}
	value, ok := record.Config[key]
	return value, ok, nil
}

// GetConfig returns a copy of all settings for a session.
func (s *Storage) GetConfig(sessionID string) (map[string]string, error) {
	record, err := s.getOrCreateSessionRecord(sessionID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(record.Config))
	for k, v := range record.Config {
		out[k] = v
	}
	return out, nil
}
