package translation

import "strings"

// Suggester serves prefix-based autocomplete over the dictionary vocabulary.
type Suggester struct {
	lexicon *Lexicon
}

// NewSuggester creates a Suggester over the given lexicon.
func NewSuggester(lexicon *Lexicon) *Suggester {
	return &Suggester{lexicon: lexicon}
}

// Suggest returns up to limit dictionary words starting with partial, sorted
// ascending. The English side is searched when language is LanguageEnglish,
// the Igala side otherwise. An empty partial returns no suggestions; "match
// everything" is deliberately not expressible here.
func (s *Suggester) Suggest(partial, language string, limit int) []string {
	prefix := strings.ToLower(partial)
	if prefix == "" || limit <= 0 {
		return nil
	}

	direction := DirectionReverse
	if language == LanguageEnglish {
		direction = DirectionForward
	}

	var suggestions []string
	for _, word := range s.lexicon.Keys(direction) {
		if !strings.HasPrefix(strings.ToLower(word), prefix) {
			continue
		}
		suggestions = append(suggestions, word)
		if len(suggestions) == limit {
			break
		}
	}
	return suggestions
}
