package storage

import "fmt"

const promptsKey = "prompts"

// AddPrompt saves a named prompt preset, replacing any preset with the same
// name.
func (s *Storage) AddPrompt(name, text string) error {
	presets, err := s.Prompts()
	if err != nil {
		return err
	}

	replaced := false
	for i := range presets {
		if presets[i].Name == name {
			presets[i].Text = text
			replaced = true
			break
		}
	}
	if !replaced {
		presets = append(presets, PromptPreset{Name: name, Text: text})
	}

	return s.ds.Set(promptsKey, presets)
}

// Prompts returns all saved prompt presets.
func (s *Storage) Prompts() ([]PromptPreset, error) {
	var presets []PromptPreset
	found, err := s.ds.Get(promptsKey, &presets)
	if err != nil {
		return nil, fmt.Errorf("load prompts: %w", err)
	}
	if !found {
		return nil, nil
	}
	return presets, nil
}
