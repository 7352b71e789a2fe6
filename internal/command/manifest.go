package command

import "math/rand"

// BuiltinSources is the explicit command manifest. Adding a command is one
// new file exposing a constructor plus one line here; Load validates the
// whole set before anything serves traffic.
//
// rng feeds commands that draw randomness (roll); tests inject a seeded
// source for reproducibility.
func BuiltinSources(rng *rand.Rand) []Source {
	return []Source{
		newPingSource(),
		newHelpSource(),
		newAskSource(),
		newRollSource(rng),
		newConfigSource(),
		newHistorySource(),
		newPromptsSource(),
		newClearSource(),
		newThemeSource(),
	}
}
